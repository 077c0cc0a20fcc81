package handler

// Stock photos served to clients that have nothing to upload.
var samplePlantImages = []string{
	"https://images.pexels.com/photos/3076899/pexels-photo-3076899.jpeg",
	"https://images.pexels.com/photos/1005058/pexels-photo-1005058.jpeg",
	"https://images.unsplash.com/photo-1551893665-f843f600794e?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwyfHxzdWNjdWxlbnRzfGVufDB8fHx8MTc0ODY4MTQwOHww&ixlib=rb-4.1.0&q=85",
	"https://images.pexels.com/photos/2132227/pexels-photo-2132227.jpeg",
	"https://images.pexels.com/photos/85773/pexels-photo-85773.jpeg",
	"https://images.pexels.com/photos/931177/pexels-photo-931177.jpeg",
	"https://images.unsplash.com/photo-1490750967868-88aa4486c946?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njl8MHwxfHNlYXJjaHwyfHxmbG93ZXJzfGVufDB8fHx8MTc0ODY4MTQxMnww&ixlib=rb-4.1.0&q=85",
	"https://images.unsplash.com/photo-1519378058457-4c29a0a2efac?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njl8MHwxfHNlYXJjaHwzfHxmbG93ZXJzfGVufDB8fHx8MTc0ODY4MTQxMnww&ixlib=rb-4.1.0&q=85",
}
