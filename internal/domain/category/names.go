package category

// names maps the fixed set of known catalog category ids to display
// names. Ids outside the table render generically via Name.
var names = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"19": "Travel & Events",
	"20": "Gaming",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
}

// Name resolves a category id to its display name, falling back to
// "Category {id}" for ids outside the known table.
func Name(id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Category " + id
}
