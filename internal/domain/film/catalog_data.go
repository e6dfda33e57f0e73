package film

import "github.com/yanqian/filmcast/internal/domain/sunlight"

// DefaultStocks is the bundled reference catalog, in display order.
func DefaultStocks() []Stock {
	return []Stock{
		{
			ID:              "portra400",
			Name:            "Portra 400",
			Brand:           "Kodak",
			ISO:             400,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Fine grain, exceptional skin tones, and excellent color rendition even when overexposed.",
			IdealConditions: []sunlight.Category{sunlight.Medium, sunlight.Low},
			ImageURL:        "https://i.imgur.com/L57PVKV.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Kodak%20Portra%20400",
		},
		{
			ID:              "portra160",
			Name:            "Portra 160",
			Brand:           "Kodak",
			ISO:             160,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Finer grain than Portra 400, excellent for bright conditions with superb skin tones.",
			IdealConditions: []sunlight.Category{sunlight.Bright, sunlight.Medium},
			ImageURL:        "https://i.imgur.com/jLEOCRn.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Kodak%20Portra%20160",
		},
		{
			ID:              "ektar100",
			Name:            "Ektar 100",
			Brand:           "Kodak",
			ISO:             100,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Vibrant colors, ultra-fine grain, perfect for landscape and nature photography.",
			IdealConditions: []sunlight.Category{sunlight.Bright},
			ImageURL:        "https://i.imgur.com/SsKo14w.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Kodak%20Ektar%20100",
		},
		{
			ID:              "hp5plus",
			Name:            "HP5 Plus",
			Brand:           "Ilford",
			ISO:             400,
			Formats:         []Format{Format35mm, Format120, FormatSheet},
			Type:            TypeBlackAndWhite,
			Description:     "Classic black and white film with beautiful grain, extremely versatile in various lighting conditions.",
			IdealConditions: []sunlight.Category{sunlight.Bright, sunlight.Medium, sunlight.Low},
			ImageURL:        "https://i.imgur.com/L5Kwyym.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Ilford%20HP5%20Plus",
		},
		{
			ID:              "trix400",
			Name:            "Tri-X 400",
			Brand:           "Kodak",
			ISO:             400,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeBlackAndWhite,
			Description:     "Iconic black and white film with distinctive grain structure, excellent contrast.",
			IdealConditions: []sunlight.Category{sunlight.Medium, sunlight.Low},
			ImageURL:        "https://i.imgur.com/1KvTCUO.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Kodak%20Tri-X%20400",
		},
		{
			ID:              "fujivelvia50",
			Name:            "Velvia 50",
			Brand:           "Fujifilm",
			ISO:             50,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Ultra-vivid color slide film, exceptional for landscapes with extremely fine grain.",
			IdealConditions: []sunlight.Category{sunlight.Bright},
			ImageURL:        "https://i.imgur.com/7LE8tLP.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Fujifilm%20Velvia%2050",
		},
		{
			ID:              "fujipro400h",
			Name:            "Pro 400H",
			Brand:           "Fujifilm",
			ISO:             400,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Beautiful pastel colors and excellent skin tones, works well in various lighting conditions.",
			IdealConditions: []sunlight.Category{sunlight.Medium, sunlight.Low},
			ImageURL:        "https://i.imgur.com/N7hqxSw.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Fujifilm%20Pro%20400H",
		},
		{
			ID:              "delta3200",
			Name:            "Delta 3200",
			Brand:           "Ilford",
			ISO:             3200,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeBlackAndWhite,
			Description:     "High-speed film for low light conditions, distinctive grain structure.",
			IdealConditions: []sunlight.Category{sunlight.Low, sunlight.Night},
			ImageURL:        "https://i.imgur.com/AZl8lNF.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Ilford%20Delta%203200",
		},
		{
			ID:              "cinestill800t",
			Name:            "CineStill 800T",
			Brand:           "CineStill",
			ISO:             800,
			Formats:         []Format{Format35mm, Format120},
			Type:            TypeColor,
			Description:     "Tungsten-balanced color film, excellent for night photography and artificial lighting.",
			IdealConditions: []sunlight.Category{sunlight.Low, sunlight.Night},
			ImageURL:        "https://i.imgur.com/RI1TmHn.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=CineStill%20800T",
		},
		{
			ID:              "fujicolor200",
			Name:            "Fujicolor 200",
			Brand:           "Fujifilm",
			ISO:             200,
			Formats:         []Format{Format35mm},
			Type:            TypeColor,
			Description:     "Versatile everyday color film with good balance of grain and color rendition.",
			IdealConditions: []sunlight.Category{sunlight.Bright, sunlight.Medium},
			ImageURL:        "https://i.imgur.com/2IbFxWL.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Fujicolor%20200",
		},
		{
			ID:              "kodakgold200",
			Name:            "Gold 200",
			Brand:           "Kodak",
			ISO:             200,
			Formats:         []Format{Format35mm},
			Type:            TypeColor,
			Description:     "Warm color rendition, perfect for everyday shooting with good value.",
			IdealConditions: []sunlight.Category{sunlight.Bright, sunlight.Medium},
			ImageURL:        "https://i.imgur.com/Dc10OhF.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Kodak%20Gold%20200",
		},
		{
			ID:              "ilforddelta100",
			Name:            "Delta 100",
			Brand:           "Ilford",
			ISO:             100,
			Formats:         []Format{Format35mm, Format120, FormatSheet},
			Type:            TypeBlackAndWhite,
			Description:     "Fine grain black and white film with excellent tonal range.",
			IdealConditions: []sunlight.Category{sunlight.Bright, sunlight.Medium},
			ImageURL:        "https://i.imgur.com/tFAQnbx.jpg",
			PurchaseURL:     "https://www.bhphotovideo.com/c/search?q=Ilford%20Delta%20100",
		},
	}
}

// DefaultCatalog builds a catalog from DefaultStocks.
func DefaultCatalog() *Catalog {
	return MustCatalog(DefaultStocks())
}
