package ui

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/lava/core/curriculum"
	"github.com/trezcool/lava/core/nav"
)

// curriculumView shows the concept graph grouped by curriculum, with the
// prerequisite chain for whichever concept is selected.
type curriculumView struct {
	app *App

	curriculums []curriculum.Curriculum
	graph       *curriculum.Graph
	selected    string
	err         error
}

func newCurriculumView(app *App) *curriculumView { return &curriculumView{app: app} }

func (v *curriculumView) Page() nav.Page { return nav.Curriculum }

func (v *curriculumView) Load(ctx context.Context) {
	var (
		concepts  []curriculum.Concept
		relations []curriculum.Relation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		currs, err := v.app.api.Curriculums(gctx)
		if err != nil {
			return err
		}
		v.curriculums = currs
		return nil
	})
	g.Go(func() error {
		var err error
		concepts, err = v.app.api.Concepts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		relations, err = v.app.api.ConceptRelations(gctx)
		return err
	})
	if v.err = g.Wait(); v.err != nil {
		return
	}
	v.graph = curriculum.NewGraph(concepts, relations)
}

// Select marks a concept so Render shows its prerequisite chain.
func (v *curriculumView) Select(conceptID string) { v.selected = conceptID }

func (v *curriculumView) Graph() *curriculum.Graph { return v.graph }

func (v *curriculumView) Render(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("Curriculum"))
	if v.err != nil {
		fmt.Fprintln(w, errorStyle.Render(userMessage(v.err)))
		return
	}
	for _, curr := range v.curriculums {
		fmt.Fprintln(w, labelStyle.Render(curr.Name))
		for _, c := range v.graph.ByCurriculum(curr.ID) {
			fmt.Fprintf(w, "  %s (%s)\n", c.Name, c.ID)
		}
	}
	if v.selected == "" {
		return
	}
	fmt.Fprintf(w, "Prerequisites for %s:\n", v.selected)
	for _, c := range v.graph.Prerequisites(v.selected) {
		fmt.Fprintf(w, "  - %s\n", c.Name)
	}
}
