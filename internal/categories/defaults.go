package categories

var defaultCodes = map[string]string{
	"5411": "Grocery Stores, Supermarkets",
	"5814": "Fast Food Restaurants",
	"5812": "Eating Places, Restaurants",
	"5977": "Cosmetic Stores",
	"5943": "Stationery, Office Supplies",
	"5199": "Nondurable Goods",
	"4121": "Taxicabs and Limousines",
	"5995": "Pet Shops",
	"5691": "Men's and Women's Clothing Stores",
	"5200": "Home Supply Warehouse Stores",
	"5311": "Department Stores",
	"7941": "Athletic Fields, Commercial Sports",
	"5262": "Marketplaces",
	"5912": "Drug Stores and Pharmacies",
	"5541": "Service Stations (Gas)",
	"8099": "Medical Services",
	"5331": "Variety Stores",
	"4829": "Money Orders / Wire Transfer",
	"4215": "Courier Services",
	"1750": "Carpentry Contractors",
	"7832": "Motion Picture Theaters",
	"5641": "Children's and Infant's Wear Stores",
	"3068": "Airlines",
	"5499": "Miscellaneous Food Stores",
	"8071": "Dental and Medical Laboratories",
}

var defaultGroups = []Group{
	{Name: "Food & Dining", Categories: []string{
		"Grocery Stores, Supermarkets",
		"Fast Food Restaurants",
		"Eating Places, Restaurants",
		"Miscellaneous Food Stores",
	}},
	{Name: "Transport", Categories: []string{
		"Taxicabs and Limousines",
		"Airlines",
		"Service Stations (Gas)",
	}},
	{Name: "Shopping", Categories: []string{
		"Cosmetic Stores",
		"Stationery, Office Supplies",
		"Nondurable Goods",
		"Men's and Women's Clothing Stores",
		"Department Stores",
		"Marketplaces",
		"Variety Stores",
		"Children's and Infant's Wear Stores",
		"Home Supply Warehouse Stores",
	}},
	{Name: "Health & Beauty", Categories: []string{
		"Drug Stores and Pharmacies",
		"Medical Services",
		"Dental and Medical Laboratories",
	}},
	{Name: "Entertainment", Categories: []string{
		"Athletic Fields, Commercial Sports",
		"Motion Picture Theaters",
	}},
	{Name: "Services", Categories: []string{
		"Courier Services",
		"Carpentry Contractors",
		"Money Orders / Wire Transfer",
	}},
	{Name: "Pets", Categories: []string{
		"Pet Shops",
	}},
}
