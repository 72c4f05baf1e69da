package scaffold

// TEMPLATES enumerates the embedded template tree. PROJECT is staged at
// the output root; SRC is overlaid onto the copied export afterwards so
// the entry point and font styles land inside src/.
var TEMPLATES = struct {
	PROJECT struct {
		Ref          TemplateRef
		PACKAGE_JSON TemplateRef
		INDEX_HTML   TemplateRef
		VITE_CONFIG  TemplateRef
	}
	SRC struct {
		Ref       TemplateRef
		MAIN_TSX  TemplateRef
		FONTS_CSS TemplateRef
	}
}{
	PROJECT: struct {
		Ref          TemplateRef
		PACKAGE_JSON TemplateRef
		INDEX_HTML   TemplateRef
		VITE_CONFIG  TemplateRef
	}{
		Ref:          TemplateRef{Path: "project", IsDir: true},
		PACKAGE_JSON: TemplateRef{Path: "project/package.json.tmpl"},
		INDEX_HTML:   TemplateRef{Path: "project/index.html.tmpl"},
		VITE_CONFIG:  TemplateRef{Path: "project/vite.config.ts"},
	},
	SRC: struct {
		Ref       TemplateRef
		MAIN_TSX  TemplateRef
		FONTS_CSS TemplateRef
	}{
		Ref:       TemplateRef{Path: "src", IsDir: true},
		MAIN_TSX:  TemplateRef{Path: "src/main.tsx"},
		FONTS_CSS: TemplateRef{Path: "src/styles/fonts.css"},
	},
}
