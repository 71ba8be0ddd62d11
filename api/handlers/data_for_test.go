package handlers

// Fixture catalogs written to a temp DATA_PATH before each handler test run.
// The lodging entry ls-01 is the reference record most assertions key on.
var testCatalogFiles = map[string]string{
	"lodging.json": `[
		{
			"id": "ls-01",
			"name": "Tà Xùa Valley Homestay",
			"description": "Wooden stilt house above the clouds",
			"location": "Tà Xùa, Bắc Yên, Sơn La",
			"price": "500.000 - 800.000 VNĐ",
			"rating": 4.7,
			"amenities": ["wifi", "breakfast", "mountain view"],
			"room_types": ["dorm", "double room"]
		},
		{
			"id": "ls-02",
			"name": "Highland Hotel",
			"description": "Hotel by the tea hills",
			"location": "Mộc Châu, Sơn La",
			"price": "900.000 - 1.500.000 VNĐ",
			"rating": 4.3,
			"amenities": ["parking", "wifi"]
		}
	]`,
	"dining.json": `[
		{
			"id": "dn-01",
			"name": "Milk Bar",
			"description": "Dairy-farm cafe in the valley",
			"location": "Mộc Châu, Sơn La",
			"price": "30.000 - 90.000 VNĐ",
			"rating": 4.4,
			"cuisine": "cafe",
			"specialties": ["fresh milk"]
		}
	]`,
	"tours.json": `[
		{
			"id": "tr-01",
			"name": "Sunrise Cloud Hunting Trek",
			"description": "Trek to the viewpoint at dawn",
			"location": "Tà Xùa, Sơn La",
			"price": "600.000 - 900.000 VNĐ",
			"rating": 4.8,
			"difficulty": "moderate",
			"highlights": ["sea of clouds"]
		}
	]`,
	"transport.json": `[
		{
			"id": "tp-01",
			"name": "Sleeper Bus",
			"route": "Hà Nội - Bắc Yên",
			"price": "250.000 - 300.000 VNĐ",
			"rating": 4.0,
			"kind": "sleeper bus"
		}
	]`,
	"attractions.json": `[
		{
			"id": "at-01",
			"name": "Sống Lưng Khủng Long",
			"description": "Dinosaur spine ridge above the clouds",
			"location": "Háng Đồng, Sơn La",
			"entry_fee": "50.000 VNĐ",
			"rating": 4.9,
			"category": "viewpoint",
			"activities": ["cloud hunting"]
		}
	]`,
}
