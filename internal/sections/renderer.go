package sections

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/metrics"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/pkg/logger"
)

// Template renders one resolved section. It must tolerate any content shape.
type Template func(rctx *RenderContext, b Block) Output

// HasTemplate reports whether t is wired to a template.
func HasTemplate(t Type) bool {
	_, ok := templates[t]
	return ok
}

// Render turns one section into markup. Hidden sections and sections whose type
// has no template produce empty output; neither is an error.
func Render(rctx *RenderContext, section models.Section, isPostDetail bool) (out Output) {
	if !section.IsVisible {
		return Output{}
	}

	t := Resolve(section.Type)
	tmpl, ok := templates[t]
	if t == Unknown || !ok {
		logger.Warn("Skipping section with unknown type", map[string]interface{}{
			"section_id": section.ID,
			"type":       section.Type,
		})
		metrics.SectionSkipped("unknown")
		return Output{}
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Error(fmt.Errorf("%v", recovered), "Section template panicked", map[string]interface{}{
				"section_id": section.ID,
				"type":       string(t),
			})
			metrics.SectionSkipped("panic")
			out = Output{}
		}
	}()

	content := section.Content
	if content == nil {
		content = models.Content{}
	}

	block := Block{
		ID:         section.ID,
		Type:       t,
		Variant:    VariantOf(t, content),
		Content:    content,
		PostDetail: isPostDetail,
	}

	out = tmpl(rctx, block)
	if out.Empty() {
		return Output{}
	}

	metrics.SectionRendered(string(t))

	if IsFullWidth(t) {
		return out
	}

	out.HTML = wrapContained(block, out.HTML)
	return out
}

// ContainerClasses returns the classes of the standard wrapper for a contained section.
func ContainerClasses(t Type, content models.Content, isPostDetail bool) string {
	classes := []string{
		"section",
		"section--" + t.Kebab(),
		"section--align-" + constants.NormaliseAlign(content.String("align")),
	}

	bg := defaultBackground(t)
	if override := constants.NormaliseBackground(content.String("background")); override != "" {
		bg = override
	}
	if bg != "" && bg != "none" {
		classes = append(classes, "section--bg-"+bg)
	}

	if isPostDetail {
		classes = append(classes, "section--post")
	}
	return strings.Join(classes, " ")
}

func wrapContained(b Block, inner string) string {
	var sb strings.Builder
	sb.WriteString(`<section`)
	if b.ID != "" {
		sb.WriteString(` id="` + template.HTMLEscapeString(b.ID) + `"`)
	}
	sb.WriteString(` class="` + ContainerClasses(b.Type, b.Content, b.PostDetail) + `">`)
	sb.WriteString(`<div class="section__container">`)
	sb.WriteString(inner)
	sb.WriteString(`</div></section>`)
	return sb.String()
}

// RenderAll renders the visible sections in ascending order. Ties keep their
// list order. Scripts are emitted once per page.
func RenderAll(rctx *RenderContext, list []models.Section, isPostDetail bool) Output {
	visible := make([]models.Section, 0, len(list))
	for _, section := range list {
		if section.IsVisible {
			visible = append(visible, section)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	var (
		sb      strings.Builder
		scripts []string
		seen    = make(map[string]struct{})
	)

	for _, section := range visible {
		out := Render(rctx, section, isPostDetail)
		sb.WriteString(out.HTML)
		for _, script := range out.Scripts {
			if _, ok := seen[script]; ok {
				continue
			}
			seen[script] = struct{}{}
			scripts = append(scripts, script)
		}
	}

	return Output{HTML: sb.String(), Scripts: scripts}
}
