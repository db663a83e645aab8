package application

import "github.com/estatia/estatia/internal/domain/entity"

// sampleListings are the fixed rows inserted on first run against an empty
// store. IDs and timestamps are assigned by the store on insert.
var sampleListings = []entity.Property{
	{
		Title:       "2 BHK Apartment in Mumbai",
		Location:    "Andheri East, Mumbai",
		Price:       8500000,
		ImageURL:    "https://cdn.pixabay.com/photo/2016/11/29/03/53/architecture-1867187_1280.jpg",
		Description: "Spacious 2-bedroom apartment with balcony and great sunlight.",
	},
	{
		Title:       "1 BHK Studio in Bangalore",
		Location:    "Whitefield, Bangalore",
		Price:       4500000,
		ImageURL:    "https://cdn.pixabay.com/photo/2020/10/04/13/22/living-room-5623029_1280.jpg",
		Description: "Cozy and affordable studio apartment ideal for professionals.",
	},
	{
		Title:       "3 BHK Flat in Delhi",
		Location:    "Rohini Sector 9, Delhi",
		Price:       9500000,
		ImageURL:    "https://cdn.pixabay.com/photo/2018/05/09/21/38/interior-3389676_1280.jpg",
		Description: "Premium 3-bedroom flat near metro station.",
	},
	{
		Title:       "2 BHK Apartment in Pune",
		Location:    "Hinjewadi, Pune",
		Price:       6700000,
		ImageURL:    "https://cdn.pixabay.com/photo/2016/11/18/16/16/interior-1835352_1280.jpg",
		Description: "Modern home with gated society and gym access.",
	},
	{
		Title:       "1 RK Room in Noida",
		Location:    "Sector 62, Noida",
		Price:       3200000,
		ImageURL:    "https://cdn.pixabay.com/photo/2020/03/26/17/32/room-4976931_1280.jpg",
		Description: "Compact room suitable for students or working individuals.",
	},
	{
		Title:       "4 BHK Villa in Gurgaon",
		Location:    "DLF Phase 3, Gurgaon",
		Price:       18000000,
		ImageURL:    "https://cdn.pixabay.com/photo/2015/01/28/23/35/house-615619_1280.jpg",
		Description: "Luxurious villa with private garden and parking.",
	},
	{
		Title:       "2 BHK Apartment in Jaipur",
		Location:    "Malviya Nagar, Jaipur",
		Price:       5200000,
		ImageURL:    "https://cdn.pixabay.com/photo/2017/08/06/11/40/people-2595685_1280.jpg",
		Description: "Well-furnished apartment near parks and schools.",
	},
	{
		Title:       "3 BHK in Ahmedabad",
		Location:    "Satellite, Ahmedabad",
		Price:       8800000,
		ImageURL:    "https://cdn.pixabay.com/photo/2020/10/24/02/10/living-room-5687332_1280.jpg",
		Description: "Spacious and well-connected residential property.",
	},
	{
		Title:       "1 BHK in Lucknow",
		Location:    "Gomti Nagar, Lucknow",
		Price:       4000000,
		ImageURL:    "https://cdn.pixabay.com/photo/2016/10/13/09/06/living-room-1738317_1280.jpg",
		Description: "Budget-friendly housing option in a prime area.",
	},
	{
		Title:       "2 BHK Apartment in Bhopal",
		Location:    "MP Nagar, Bhopal",
		Price:       5500000,
		ImageURL:    "https://cdn.pixabay.com/photo/2020/04/16/18/05/sofa-5051276_1280.jpg",
		Description: "Peaceful society with nearby amenities and public transport.",
	},
}
