package application

import (
	"github.com/ngodingskuyy/doctypes-go/internal/generator"
	"github.com/ngodingskuyy/doctypes-go/internal/repository"
)

type GeneratorService struct {
	Repos *repository.Repos
	gen   *generator.Generator
}

func NewGeneratorService(repos *repository.Repos, gen *generator.Generator) *GeneratorService {
	return &GeneratorService{Repos: repos, gen: gen}
}

// ParseTypes resolves the requested artifact type names; an empty request
// means all artifact types.
func (s *GeneratorService) ParseTypes(names []string) ([]generator.ArtifactType, error) {
	if len(names) == 0 {
		return generator.AllArtifactTypes, nil
	}
	var types []generator.ArtifactType
	for _, name := range names {
		t, err := generator.ParseArtifactType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Generate renders and writes artifacts for a doctype. With preview set it
// only renders; nothing touches the filesystem.
func (s *GeneratorService) Generate(doctypeName string, types []generator.ArtifactType, force, preview bool) (map[generator.ArtifactType]generator.Result, error) {
	d, err := s.Repos.Doctype.GetByName(doctypeName)
	if err != nil {
		return nil, err
	}
	if preview {
		return s.gen.Preview(&d, types), nil
	}
	return s.gen.Generate(&d, types, force), nil
}
