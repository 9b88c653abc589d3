package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"valhalla/internal/utils"

	"github.com/goccy/go-yaml"
)

//go:embed plans/*.yaml
var planFiles embed.FS

type Exercise struct {
	Name string `yaml:"name"`
	Sets string `yaml:"sets"`
	Reps string `yaml:"reps"`
}

// Block groups exercises under an optional label ("Giant Set 1:", "Finisher").
type Block struct {
	Label     string     `yaml:"label"`
	Exercises []Exercise `yaml:"exercises"`
}

type Cardio struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
}

// Day is one training day of a phase, labelled with a rune.
type Day struct {
	Rune   string  `yaml:"rune"`
	Blocks []Block `yaml:"blocks"`
	Cardio Cardio  `yaml:"cardio"`
	Note   string  `yaml:"note"`
}

type Phase struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // markdown
	Days        []Day    `yaml:"days"`
	Schedule    []string `yaml:"schedule"`
}

type Plan struct {
	Slug   string  `yaml:"slug"`
	Title  string  `yaml:"title"`
	Phases []Phase `yaml:"phases"`
}

// PhaseAt returns the phase at i, wrapped into range, with its index.
func (p *Plan) PhaseAt(i int) (int, Phase) {
	idx := utils.WrapIndex(i, len(p.Phases))
	return idx, p.Phases[idx]
}

func (p *Plan) Prev(i int) int {
	return utils.WrapIndex(i-1, len(p.Phases))
}

func (p *Plan) Next(i int) int {
	return utils.WrapIndex(i+1, len(p.Phases))
}

var (
	plans     map[string]*Plan
	plansErr  error
	plansOnce sync.Once
)

// LoadPlans parses every embedded plan, keyed by slug.
func LoadPlans() (map[string]*Plan, error) {
	plansOnce.Do(func() {
		plans, plansErr = parsePlans(planFiles)
	})
	return plans, plansErr
}

// LookupPlan returns the workout plan for a program slug.
func LookupPlan(slug string) (*Plan, bool) {
	all, err := LoadPlans()
	if err != nil {
		return nil, false
	}
	p, ok := all[slug]
	return p, ok
}

func parsePlans(fsys fs.FS) (map[string]*Plan, error) {
	files, err := fs.Glob(fsys, "plans/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Plan, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var p Plan
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path.Base(name), err)
		}
		if p.Slug == "" || len(p.Phases) == 0 {
			return nil, fmt.Errorf("plan %s: slug and at least one phase required", path.Base(name))
		}
		out[p.Slug] = &p
	}
	return out, nil
}
