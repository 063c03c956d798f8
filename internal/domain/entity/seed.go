package entity

// SeedCatalog returns the fixed sample catalog used to bootstrap an empty
// store: installed when the document store returns no products on first run,
// or when both the store and the local mirror are empty.
func SeedCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Split AC 1.5 Ton",
			Category:    CategoryAirConditioners,
			Price:       50,
			Description: "Energy efficient split AC with remote control and timer function.",
			Image:       "https://images.pexels.com/photos/10840950/pexels-photo-10840950.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"Remote Control", "Timer Function", "5 Star Rating", "Copper Coil"},
		},
		{
			ID:          "2",
			Name:        "Window AC 1 Ton",
			Category:    CategoryAirConditioners,
			Price:       35,
			Description: "Compact window AC perfect for small rooms.",
			Image:       "https://images.pexels.com/photos/8001236/pexels-photo-8001236.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"Compact Design", "Energy Efficient", "Easy Installation"},
		},
		{
			ID:          "3",
			Name:        "Executive Office Chair",
			Category:    CategoryFurniture,
			Price:       25,
			Description: "Comfortable ergonomic office chair with lumbar support.",
			Image:       "https://images.pexels.com/photos/586985/pexels-photo-586985.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"Ergonomic Design", "Lumbar Support", "Adjustable Height", "Swivel Base"},
		},
		{
			ID:          "4",
			Name:        "King Size Bed",
			Category:    CategoryFurniture,
			Price:       45,
			Description: "Spacious king size bed with premium mattress.",
			Image:       "https://images.pexels.com/photos/1454804/pexels-photo-1454804.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"King Size", "Premium Mattress", "Wooden Frame", "Storage Drawers"},
		},
		{
			ID:          "5",
			Name:        "3-Seater Sofa",
			Category:    CategoryFurniture,
			Price:       40,
			Description: "Comfortable 3-seater sofa perfect for living room.",
			Image:       "https://images.pexels.com/photos/1148952/pexels-photo-1148952.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"3 Seater", "Fabric Upholstery", "Comfortable Cushions", "Modern Design"},
		},
		{
			ID:          "6",
			Name:        "Dining Table Set",
			Category:    CategoryFurniture,
			Price:       30,
			Description: "4-seater dining table with chairs.",
			Image:       "https://images.pexels.com/photos/1080696/pexels-photo-1080696.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"4 Seater", "Wooden Finish", "Includes Chairs", "Sturdy Build"},
		},
		{
			ID:          "7",
			Name:        "Study Table",
			Category:    CategoryFurniture,
			Price:       15,
			Description: "Compact study table with drawer and cable slot.",
			Image:       "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=800",
			Available:   true,
			Features:    []string{"Compact", "Storage Drawer", "Cable Management", "Easy Assembly"},
		},
	}
}
