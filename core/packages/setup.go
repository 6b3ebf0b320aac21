package packages

import (
	"strconv"
	"strings"

	"github.com/fati-2700/pricingos/core/determinism"
	"github.com/fati-2700/pricingos/core/types"
	"github.com/fati-2700/pricingos/internal/errors"
)

// MaxProjectTypes is the number of project types a single setup may price.
const MaxProjectTypes = 3

var (
	projectTypeIDs = determinism.NewIDGenerator("project-type")
	packageIDs     = determinism.NewIDGenerator("package")
)

// SetupRequest is a complete pricing setup: one profile priced for one
// client type and positioning across several project types.
type SetupRequest struct {
	Profile      types.Profile       `json:"profile"`
	ProjectTypes []types.ProjectType `json:"project_types"`
	ClientType   types.ClientType    `json:"client_type"`
	Positioning  types.Positioning   `json:"positioning"`
}

// SetupResult holds the packages of every priced project type.
type SetupResult struct {
	Projects []ProjectPackages `json:"projects"`

	// Skipped lists the indexes of project types with a blank name
	Skipped []int `json:"skipped,omitempty"`
}

// ProjectPackages is the outcome for a single project type.
type ProjectPackages struct {
	ProjectTypeID string                   `json:"project_type_id"`
	ProjectType   types.ProjectType        `json:"project_type"`
	Category      types.Category           `json:"category"`
	Packages      []types.GeneratedPackage `json:"packages"`
	Breakdown     *types.Breakdown         `json:"breakdown,omitempty"`
}

// GenerateSetup runs Generate once per named project type. Each project type
// is independent; the first invalid one aborts the setup and no result is
// returned.
func GenerateSetup(req SetupRequest) (*SetupResult, error) {
	result := &SetupResult{}

	var named []int
	for i, pt := range req.ProjectTypes {
		if strings.TrimSpace(pt.Name) == "" {
			result.Skipped = append(result.Skipped, i)
			continue
		}
		named = append(named, i)
	}
	if len(named) == 0 {
		return nil, errors.Wrap(errors.TypeInput, "setup", ErrNoProjectTypes)
	}
	if len(named) > MaxProjectTypes {
		return nil, errors.Wrap(errors.TypeInput, "setup", ErrTooManyProjectTypes).
			WithContext("project_types", len(named))
	}

	for _, i := range named {
		pt := req.ProjectTypes[i]
		pkgs, bd, err := GenerateWithBreakdown(req.Profile, pt, req.ClientType, req.Positioning)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeInput, err, "project type %d", i).
				WithContext("index", i)
		}

		ptID := ProjectTypeID(i, pt)
		project := ProjectPackages{
			ProjectTypeID: ptID,
			ProjectType:   pt,
			Category:      bd.Category,
			Packages:      make([]types.GeneratedPackage, 0, len(pkgs)),
			Breakdown:     bd,
		}
		for _, p := range pkgs {
			project.Packages = append(project.Packages, types.GeneratedPackage{
				ID:            packageIDs.Generate(ptID, p.PackageName.String()).String(),
				ProjectTypeID: ptID,
				Package:       p,
			})
		}
		result.Projects = append(result.Projects, project)
	}
	return result, nil
}

// ProjectTypeID derives a stable identifier for the project type at position
// index of a setup.
func ProjectTypeID(index int, pt types.ProjectType) string {
	return projectTypeIDs.Generate(
		strconv.Itoa(index),
		pt.Name,
		pt.Description,
		strconv.Itoa(pt.Complexity),
		strconv.Itoa(pt.TypicalDurationDays),
	).String()
}
