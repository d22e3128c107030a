// Package catalog serves the statically curated product listings used by
// the companion client. The data is maintained by hand with direct retailer
// URLs; there is no decision logic here, only lookup.
package catalog

// PricePoint is one retailer listing for a catalog product.
type PricePoint struct {
	Retailer string `json:"retailer"`
	Price    int    `json:"price"`
	InStock  bool   `json:"inStock"`
	URL      string `json:"url"`
}

// Product is a curated catalog entry.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Specs       map[string]string `json:"specs"`
	Prices      []PricePoint      `json:"prices"`
	ReleaseDate string            `json:"releaseDate,omitempty"`
}

// Category is a catalog category with its product count.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Products returns the full catalog, optionally filtered by category.
func Products(category string) []Product {
	if category == "" {
		return products
	}
	filtered := []Product{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProductByID returns a single catalog entry, or nil when the id is unknown.
func ProductByID(id string) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// Categories returns all categories with product counts.
func Categories() []Category {
	counts := map[string]int{}
	order := []string{}
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	cats := make([]Category, 0, len(order))
	for _, id := range order {
		cats = append(cats, Category{ID: id, Label: capitalize(id), Count: counts[id]})
	}
	return cats
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

var products = []Product{
	{
		ID:       "iphone-16-128-unlocked",
		Name:     "iPhone 16",
		Category: "iphone",
		Specs: map[string]string{
			"storage": "128GB", "color": "White",
			"display": "6.1\" Super Retina XDR", "camera": "48MP Fusion",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 799, InStock: true, URL: "https://www.apple.com/shop/buy-iphone/iphone-16"},
			{Retailer: "amazon", Price: 799, InStock: true, URL: "https://www.amazon.com/Apple-iPhone-128GB-White-Intelligence/dp/B0DHTYW7P8"},
			{Retailer: "bestbuy", Price: 799, InStock: true, URL: "https://www.bestbuy.com/site/apple-iphone-16-128gb-white-verizon/JJGCQ866TH"},
			{Retailer: "walmart", Price: 799, InStock: true, URL: "https://www.walmart.com/ip/iPhone-16-128GB-White-Apple-Intelligence/11469110090"},
			{Retailer: "target", Price: 799, InStock: true, URL: "https://www.target.com/p/apple-iphone-16-128gb-white/-/A-86076262"},
			{Retailer: "bhphoto", Price: 799, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1800534-REG/apple_myd53ll_a_iphone_16_128gb_white.html"},
			{Retailer: "adorama", Price: 799, InStock: true, URL: "https://www.adorama.com/ac12816wh.html"},
		},
		ReleaseDate: "2024-09-20",
	},
	{
		ID:       "iphone-16-pro-max-256",
		Name:     "iPhone 16 Pro Max",
		Category: "iphone",
		Specs: map[string]string{
			"storage": "256GB", "color": "Desert Titanium",
			"display": "6.9\" Super Retina XDR", "camera": "48MP Fusion",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 1199, InStock: true, URL: "https://www.apple.com/shop/buy-iphone/iphone-16-pro-max"},
			{Retailer: "amazon", Price: 1199, InStock: true, URL: "https://www.amazon.com/Apple-iPhone-256GB-Desert-Titanium/dp/B0DHTZ4QQP"},
			{Retailer: "bestbuy", Price: 1199, InStock: true, URL: "https://www.bestbuy.com/site/apple-iphone-16-pro-max-256gb-desert-titanium-verizon/JCQ6HRFWVW"},
			{Retailer: "walmart", Price: 1199, InStock: true, URL: "https://www.walmart.com/ip/Apple-iPhone-16-Pro-Max-256GB-Desert-Titanium/5000354046"},
			{Retailer: "target", Price: 1199, InStock: true, URL: "https://www.target.com/p/apple-iphone-16-pro-max/-/A-93597962"},
			{Retailer: "bhphoto", Price: 1199, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1800550-REG/apple_mynn3ll_a_iphone_16_pro_max.html"},
			{Retailer: "adorama", Price: 1199, InStock: true, URL: "https://www.adorama.com/ac25616pmaxdt.html"},
		},
		ReleaseDate: "2024-09-20",
	},
	{
		ID:       "macbook-air-13-m4",
		Name:     "MacBook Air 13\"",
		Category: "mac",
		Specs: map[string]string{
			"chip": "M4", "ram": "16GB", "storage": "256GB SSD",
			"display": "13.6\" Liquid Retina",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 999, InStock: true, URL: "https://www.apple.com/shop/buy-mac/macbook-air/13-inch"},
			{Retailer: "amazon", Price: 999, InStock: true, URL: "https://www.amazon.com/Apple-MacBook-13-inch-10-Core-16-Core/dp/B0DKLHHMZ4"},
			{Retailer: "bestbuy", Price: 999, InStock: true, URL: "https://www.bestbuy.com/site/apple-macbook-air-13-inch-laptop-apple-m4-chip-16gb-memory-256gb-ssd-midnight/6534616.p"},
			{Retailer: "walmart", Price: 999, InStock: true, URL: "https://www.walmart.com/ip/Apple-13-inch-MacBook-Air-M4-w-10-core-CPU-and-8-core-GPU-256GB-SSD-Silver-MW0W3LL-A-2025/15481367422"},
			{Retailer: "bhphoto", Price: 999, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1811193-REG/apple_mw123ll_a_13_macbook_air_m4.html"},
			{Retailer: "adorama", Price: 999, InStock: true, URL: "https://www.adorama.com/acmba1324sm4.html"},
		},
		ReleaseDate: "2025-03-01",
	},
	{
		ID:       "macbook-pro-14-m4",
		Name:     "MacBook Pro 14\"",
		Category: "mac",
		Specs: map[string]string{
			"chip": "M4", "ram": "24GB", "storage": "512GB SSD",
			"display": "14.2\" XDR",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 1999, InStock: true, URL: "https://www.apple.com/shop/buy-mac/macbook-pro/14-inch"},
			{Retailer: "amazon", Price: 1999, InStock: true, URL: "https://www.amazon.com/Apple-MacBook-14-inch-14-Core-20-Core/dp/B0DKLHH7T4"},
			{Retailer: "bestbuy", Price: 1999, InStock: true, URL: "https://www.bestbuy.com/site/apple-macbook-pro-14-inch-laptop-m4-pro-chip-24gb-memory-512gb-ssd-space-black/6534615.p"},
			{Retailer: "walmart", Price: 1999, InStock: true, URL: "https://www.walmart.com/ip/Apple-14-MacBook-Pro-with-M4-Chip-10-Core-CPU-10-Core-GPU-24GB-Memory-1TB-SSD-Space-Black-2024/13679766551"},
			{Retailer: "bhphoto", Price: 1999, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1811194-REG/apple_mbp14m4_24gb_512.html"},
			{Retailer: "adorama", Price: 1999, InStock: true, URL: "https://www.adorama.com/acmbp1424m4.html"},
		},
		ReleaseDate: "2024-11-01",
	},
	{
		ID:       "ipad-air-11-m3",
		Name:     "iPad Air 11\"",
		Category: "ipad",
		Specs: map[string]string{
			"chip": "M3", "storage": "128GB", "display": "11\" Liquid Retina",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 599, InStock: true, URL: "https://www.apple.com/shop/buy-ipad/ipad-air/11-inch-display-128gb-space-gray-wifi"},
			{Retailer: "amazon", Price: 599, InStock: true, URL: "https://www.amazon.com/Apple-iPad-Air-11-inch-128GB/dp/B0D3J3C1QD"},
			{Retailer: "bestbuy", Price: 599, InStock: true, URL: "https://www.bestbuy.com/site/apple-11-inch-ipad-air-m3-chip-wi-fi-128gb-space-gray/6534608.p"},
			{Retailer: "walmart", Price: 599, InStock: true, URL: "https://www.walmart.com/ip/2025-Apple-11-inch-iPad-Air-M3-Built-for-Apple-Intelligence-Wi-Fi-128GB-Space-Gray/15450254481"},
			{Retailer: "target", Price: 599, InStock: true, URL: "https://www.target.com/p/apple-ipad-air-m3-11-inch-wi-fi-128gb-space-gray/-/A-91122029"},
			{Retailer: "bhphoto", Price: 599, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1812268-REG/apple_ipad_air_11_m3_128gb.html"},
			{Retailer: "adorama", Price: 599, InStock: true, URL: "https://www.adorama.com/acipadair11.html"},
		},
		ReleaseDate: "2025-03-01",
	},
	{
		ID:       "mac-mini-m4",
		Name:     "Mac mini",
		Category: "mac",
		Specs: map[string]string{
			"chip": "M4", "ram": "16GB", "storage": "256GB SSD",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 599, InStock: true, URL: "https://www.apple.com/shop/buy-mac/mac-mini/m4"},
			{Retailer: "amazon", Price: 599, InStock: true, URL: "https://www.amazon.com/Apple-2024-Mac-Desktop-Computer/dp/B0DKLHHMZ5"},
			{Retailer: "bestbuy", Price: 599, InStock: true, URL: "https://www.bestbuy.com/site/apple-mac-mini-desktop-m4-chip-16gb-memory-256gb-ssd-silver/6534617.p"},
			{Retailer: "walmart", Price: 599, InStock: true, URL: "https://www.walmart.com/ip/Apple-2024-Mac-mini-Desktop-Computer-with-M4-chip-10-core-CPU-10-core-GPU-16GB-Unified-Memory-256GB/5406222929"},
			{Retailer: "bhphoto", Price: 599, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1811195-REG/apple_mac_mini_m4_256gb.html"},
			{Retailer: "adorama", Price: 599, InStock: true, URL: "https://www.adorama.com/acmacminim4.html"},
		},
		ReleaseDate: "2025-03-01",
	},
	{
		ID:       "apple-watch-series-10",
		Name:     "Apple Watch Series 10",
		Category: "watch",
		Specs: map[string]string{
			"size": "42mm", "case": "Jet Black Aluminum", "band": "Black Sport Band",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 399, InStock: true, URL: "https://www.apple.com/shop/buy-watch/apple-watch"},
			{Retailer: "amazon", Price: 399, InStock: true, URL: "https://www.amazon.com/Apple-Watch-GPS-Aluminum-Sport/dp/B0DGHQ72MX"},
			{Retailer: "bestbuy", Price: 399, InStock: true, URL: "https://www.bestbuy.com/site/apple-watch-series-10-gps-42mm-aluminum-case-with-black-sport-band-m-l-jet-black/6574960.p"},
			{Retailer: "walmart", Price: 399, InStock: true, URL: "https://www.walmart.com/ip/Apple-Watch-Series-10-GPS-42mm-Jet-Black-Aluminum-Case-with-Black-Sport-Band-S-M/11385157008"},
			{Retailer: "target", Price: 399, InStock: true, URL: "https://www.target.com/p/apple-watch-series-10-gps-42mm-jet-black-aluminum-case-with-black-sport-band-m-l/-/A-91122498"},
		},
		ReleaseDate: "2024-09-20",
	},
	{
		ID:       "airpods-pro-2",
		Name:     "AirPods Pro 2",
		Category: "airpods",
		Specs: map[string]string{
			"chip": "H2", "features": "Active Noise Cancellation, Transparency, MagSafe Charging",
			"battery": "30h with case",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 249, InStock: true, URL: "https://www.apple.com/shop/product/MTJV3AM/A/airpods-pro"},
			{Retailer: "amazon", Price: 229, InStock: true, URL: "https://www.amazon.com/Apple-Generation-Cancelling-Transparency-Personalized/dp/B0D1XD1ZV3"},
			{Retailer: "bestbuy", Price: 249, InStock: true, URL: "https://www.bestbuy.com/site/apple-airpods-pro-2-wireless-active-noise-cancelling-earbuds-hearing-aid-feature-bluetooth-headphones-with-magsafe-charging-case-usbc-white/5720312.p"},
			{Retailer: "walmart", Price: 229, InStock: true, URL: "https://www.walmart.com/ip/Apple-AirPods-Pro-2-White/5043748016"},
			{Retailer: "target", Price: 249, InStock: true, URL: "https://www.target.com/p/apple-airpods-pro-2nd-generation/-/A-85978618"},
			{Retailer: "bhphoto", Price: 249, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1733640-REG/apple_mtjv3am_a_airpods_pro_2nd.html"},
			{Retailer: "adorama", Price: 249, InStock: true, URL: "https://www.adorama.com/acmtjv3ama.html"},
			{Retailer: "costco", Price: 239, InStock: true, URL: "https://www.costco.com/apple-airpods-pro-2nd-generation.product.4000143838.html"},
		},
		ReleaseDate: "2023-09-22",
	},
	{
		ID:       "airpods-4",
		Name:     "AirPods 4",
		Category: "airpods",
		Specs: map[string]string{
			"chip": "H2", "features": "Active Noise Cancellation, Spatial Audio, USB-C",
			"battery": "30h with case",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 179, InStock: true, URL: "https://www.apple.com/shop/buy-airpods/airpods-4"},
			{Retailer: "amazon", Price: 169, InStock: true, URL: "https://www.amazon.com/Apple-AirPods-4-Wireless-Earbuds/dp/B0D1XD5Z8Q"},
			{Retailer: "bestbuy", Price: 179, InStock: true, URL: "https://www.bestbuy.com/site/apple-airpods-4-wireless-earbuds-active-noise-cancelling-bluetooth-headphones-with-magsafe-charging-case-usbc-white/6418599.p"},
			{Retailer: "walmart", Price: 169, InStock: true, URL: "https://www.walmart.com/ip/Apple-AirPods-4-Active-Noise-Cancelling/11620163840"},
			{Retailer: "target", Price: 179, InStock: true, URL: "https://www.target.com/p/apple-airpods-4-with-active-noise-cancellation/-/A-92635832"},
			{Retailer: "bhphoto", Price: 179, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1802197-REG/apple_airpods_4_with_active.html"},
			{Retailer: "adorama", Price: 179, InStock: true, URL: "https://www.adorama.com/acairpods4anc.html"},
		},
		ReleaseDate: "2024-09-20",
	},
	{
		ID:       "airpods-max",
		Name:     "AirPods Max",
		Category: "airpods",
		Specs: map[string]string{
			"chip": "H1", "features": "Active Noise Cancellation, Spatial Audio, Digital Crown",
			"battery": "20h",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 549, InStock: true, URL: "https://www.apple.com/shop/buy-airpods/airpods-max"},
			{Retailer: "amazon", Price: 499, InStock: true, URL: "https://www.amazon.com/Apple-AirPods-Max-Black-USB/dp/B0D1X6JJWQ"},
			{Retailer: "bestbuy", Price: 549, InStock: true, URL: "https://www.bestbuy.com/site/apple-airpods-max-wireless-over-ear-headphones-active-noise-cancelling-bluetooth-space-gray/6418591.p"},
			{Retailer: "walmart", Price: 499, InStock: true, URL: "https://www.walmart.com/ip/Apple-AirPods-Max-Space-Gray/15448637505"},
			{Retailer: "target", Price: 549, InStock: true, URL: "https://www.target.com/p/apple-airpods-max/-/A-83651668"},
			{Retailer: "bhphoto", Price: 549, InStock: true, URL: "https://www.bhphotovideo.com/c/product/1597291-REG/apple_airpods_max_silver.html"},
			{Retailer: "adorama", Price: 549, InStock: true, URL: "https://www.adorama.com/acmmef2ama.html"},
		},
		ReleaseDate: "2024-12-11",
	},
	{
		ID:       "airpods-4-standard",
		Name:     "AirPods 4 (Standard)",
		Category: "airpods",
		Specs: map[string]string{
			"chip": "H2", "features": "Spatial Audio, USB-C, No ANC",
			"battery": "30h with case",
		},
		Prices: []PricePoint{
			{Retailer: "apple", Price: 129, InStock: true, URL: "https://www.apple.com/shop/buy-airpods/airpods-4"},
			{Retailer: "amazon", Price: 119, InStock: true, URL: "https://www.amazon.com/Apple-AirPods-4-Wireless-Earbuds/dp/B0D1XD5Z8Q"},
			{Retailer: "bestbuy", Price: 129, InStock: true, URL: "https://www.bestbuy.com/site/apple-airpods-4-wireless-earbuds-bluetooth-headphones-with-magsafe-charging-case-usbc-white/6418600.p"},
			{Retailer: "walmart", Price: 119, InStock: true, URL: "https://www.walmart.com/ip/Apple-AirPods-4/5451953393"},
			{Retailer: "target", Price: 129, InStock: true, URL: "https://www.target.com/p/apple-airpods-4/-/A-92635831"},
		},
		ReleaseDate: "2024-09-20",
	},
}
