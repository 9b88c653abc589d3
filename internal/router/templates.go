package router

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"
	"valhalla/internal/models"
	"valhalla/internal/services"
	"valhalla/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

var tagColors = map[string]string{
	models.TagFeedback:   "bg-blue-600",
	models.TagAdvice:     "bg-purple-600",
	models.TagSuggestion: "bg-green-600",
	models.TagOther:      "bg-gray-600",
}

var funcMap = template.FuncMap{
	"dict": func(values ...interface{}) (map[string]interface{}, error) {
		if len(values)%2 != 0 {
			return nil, fmt.Errorf("invalid dict call")
		}
		dict := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict keys must be strings")
			}
			dict[key] = values[i+1]
		}
		return dict, nil
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"timeAgo": func(t time.Time) string {
		return utils.TimeAgo(t, time.Now())
	},
	"tagColor": func(tag string) string {
		if c, ok := tagColors[tag]; ok {
			return c
		}
		return tagColors[models.TagOther]
	},
	"markdown": func(s string) template.HTML {
		return utils.RenderMarkdown(s)
	},
	// safeCSS is for seeded program colours, never user input.
	"safeCSS": func(s string) template.CSS {
		return template.CSS(s)
	},
	"fieldError": func(errs services.FieldErrors, field string) string {
		return errs[field]
	},
}

// loadTemplates registers one template set per view: the base layout first
// so it is the set's entry point, then includes, components and the view.
// Fragments skip the layout and render their own file.
func loadTemplates(fsys fs.FS) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts := mustGlob(fsys, "layouts/*.html")
	includes := mustGlob(fsys, "includes/*.html")
	components := mustGlob(fsys, "components/*.html")

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(includes)+len(components)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, "views/"+view)
		return files
	}

	fragment := func(view string) []string {
		files := []string{"views/" + view}
		return append(files, components...)
	}

	add := func(name string, files []string) {
		tmpl := template.Must(template.New(path.Base(files[0])).Funcs(funcMap).ParseFS(fsys, files...))
		r.Add(name, tmpl)
	}

	// Gate
	add("gate.html", assemble("gate.html"))

	// Home and programs
	add("home.html", assemble("home.html"))
	add("program/plan.html", assemble("program/plan.html"))

	// Forum
	add("forum/list.html", assemble("forum/list.html"))
	add("forum/create.html", assemble("forum/create.html"))
	add("forum/detail.html", assemble("forum/detail.html"))
	add("forum/reply.html", fragment("forum/reply.html"))
	add("forum/reply_errors.html", fragment("forum/reply_errors.html"))

	// Error
	add("error.html", assemble("error.html"))

	return r
}

func mustGlob(fsys fs.FS, pattern string) []string {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		panic(err)
	}
	return files
}
