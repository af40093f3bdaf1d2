package embedargs

// Recognized argument keys.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyURL         = "url"
	KeyColor       = "color"
	KeyColour      = "colour"
	KeyFooterText  = "footer-text"
	KeyFooterIcon  = "footer-icon"
	KeyAuthorName  = "author-name"
	KeyAuthorIcon  = "author-icon"
	KeyAuthorURL   = "author-url"
	KeyImage       = "image"
	KeyThumbnail   = "thumbnail"
)

// Build parses raw and returns the Document it describes. Keys that are
// not recognized become non-inline fields, in the order they were
// first given. A bad color stops the build and no Document is
// returned.
func Build(raw string) (*Document, error) {
	args, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return FromArgs(args)
}

// FromArgs builds a Document from already parsed Args.
func FromArgs(args *Args) (*Document, error) {
	d := NewDocument()

	for _, key := range args.keys {
		value := args.values[key]
		if !IsRecognized(key) {
			d.AddField(key, value, false)
			continue
		}

		switch key {
		case KeyTitle:
			d.SetTitle(value)
		case KeyDescription:
			d.SetDescription(value)
		case KeyURL:
			d.SetURL(value)
		case KeyColor, KeyColour:
			color, err := ParseColor(value)
			if err != nil {
				return nil, &ColorError{Key: key, Value: value, Err: err}
			}
			d.SetColor(color)
		case KeyImage:
			d.SetImage(value)
		case KeyThumbnail:
			d.SetThumbnail(value)
		default:
			// footer and author keys are read from the whole mapping below
		}
	}

	if args.Has(KeyFooterText, KeyFooterIcon) {
		text, _ := args.Get(KeyFooterText)
		icon, _ := args.Get(KeyFooterIcon)
		d.SetFooter(text, icon)
	}
	if args.Has(KeyAuthorName, KeyAuthorIcon, KeyAuthorURL) {
		name, _ := args.Get(KeyAuthorName)
		url, _ := args.Get(KeyAuthorURL)
		icon, _ := args.Get(KeyAuthorIcon)
		d.SetAuthor(name, url, icon)
	}

	return d, nil
}

// IsRecognized reports whether key maps onto an embed attribute rather
// than an extra field.
func IsRecognized(key string) bool {
	switch key {
	case KeyTitle, KeyDescription, KeyURL, KeyColor, KeyColour,
		KeyFooterText, KeyFooterIcon, KeyAuthorName, KeyAuthorIcon, KeyAuthorURL,
		KeyImage, KeyThumbnail:
		return true
	}
	return false
}
