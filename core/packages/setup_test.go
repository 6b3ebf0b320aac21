package packages

import (
	"errors"
	"testing"

	"github.com/fati-2700/pricingos/core/types"
	apperrors "github.com/fati-2700/pricingos/internal/errors"
)

func setupRequest(pts ...types.ProjectType) SetupRequest {
	return SetupRequest{
		Profile:      profileWithRate("50"),
		ProjectTypes: pts,
		ClientType:   types.ClientSMB,
		Positioning:  types.PositioningMidMarket,
	}
}

func TestGenerateSetupSkipsBlankNames(t *testing.T) {
	req := setupRequest(
		websiteDesign(),
		types.ProjectType{Name: "   ", Complexity: 3, TypicalDurationDays: 30},
		types.ProjectType{Name: "SEO Retainer", Complexity: 2, TypicalDurationDays: 20},
	)

	res, err := GenerateSetup(req)
	if err != nil {
		t.Fatalf("GenerateSetup: %v", err)
	}
	if len(res.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(res.Projects))
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != 1 {
		t.Errorf("expected index 1 skipped, got %v", res.Skipped)
	}
	if res.Projects[1].Category != types.CategorySEO {
		t.Errorf("second project category %s, want seo", res.Projects[1].Category)
	}

	first := res.Projects[0]
	if first.Packages[1].Price != 24000 {
		t.Errorf("Standard price %d, want 24000", first.Packages[1].Price)
	}
	seen := map[string]bool{}
	for _, p := range first.Packages {
		if p.ProjectTypeID != first.ProjectTypeID {
			t.Errorf("%s: project type id %s, want %s", p.PackageName, p.ProjectTypeID, first.ProjectTypeID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate package id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGenerateSetupIDsAreStable(t *testing.T) {
	req := setupRequest(websiteDesign(), websiteDesign())

	a, err := GenerateSetup(req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSetup(req)
	if err != nil {
		t.Fatal(err)
	}
	if a.Projects[0].Packages[2].ID != b.Projects[0].Packages[2].ID {
		t.Error("package IDs must be deterministic")
	}
	if a.Projects[0].ProjectTypeID == a.Projects[1].ProjectTypeID {
		t.Error("identical project types at different positions must get different IDs")
	}
}

func TestGenerateSetupLimits(t *testing.T) {
	pt := websiteDesign()

	if _, err := GenerateSetup(setupRequest()); !errors.Is(err, ErrNoProjectTypes) {
		t.Errorf("empty setup: got %v, want ErrNoProjectTypes", err)
	}
	if _, err := GenerateSetup(setupRequest(types.ProjectType{Name: ""})); !errors.Is(err, ErrNoProjectTypes) {
		t.Errorf("blank-only setup: got %v, want ErrNoProjectTypes", err)
	}
	if _, err := GenerateSetup(setupRequest(pt, pt, pt, pt)); !errors.Is(err, ErrTooManyProjectTypes) {
		t.Errorf("four project types: got %v, want ErrTooManyProjectTypes", err)
	}
}

func TestGenerateSetupAbortsOnInvalidProjectType(t *testing.T) {
	req := setupRequest(websiteDesign(), types.ProjectType{Name: "Brand", Complexity: 9, TypicalDurationDays: 5})

	res, err := GenerateSetup(req)
	if res != nil {
		t.Fatal("expected no result on error")
	}
	if !errors.Is(err, ErrInvalidComplexity) {
		t.Fatalf("got %v, want ErrInvalidComplexity", err)
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Context["index"] != 1 {
		t.Errorf("expected failing index 1 in error context, got %v", err)
	}
}
