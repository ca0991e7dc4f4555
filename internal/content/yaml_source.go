package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WordbookSource is a wordbook described in a YAML seed file.
type WordbookSource struct {
	Name     string          `yaml:"name"`
	Level    string          `yaml:"level,omitempty"`
	Sections []SectionSource `yaml:"sections"`
}

// SectionSource is one section of a YAML wordbook.
type SectionSource struct {
	Number int          `yaml:"number"`
	Words  []WordSource `yaml:"words"`
}

// WordSource is one word of a YAML wordbook.
type WordSource struct {
	Term    string `yaml:"term"`
	Meaning string `yaml:"meaning"`
	Example string `yaml:"example,omitempty"`
}

// ReadWordbookFile reads a single YAML wordbook seed file.
func ReadWordbookFile(path string) (WordbookSource, error) {
	var source WordbookSource

	file, err := os.Open(path)
	if err != nil {
		return source, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&source); err != nil {
		return source, fmt.Errorf("yaml.NewDecoder().Decode(%s) > %w", path, err)
	}

	if source.Name == "" {
		return source, fmt.Errorf("wordbook file %s has no name", path)
	}
	if len(source.Sections) == 0 {
		return source, fmt.Errorf("wordbook file %s has no sections", path)
	}
	for _, section := range source.Sections {
		if section.Number < 1 {
			return source, fmt.Errorf("wordbook file %s has an invalid section number %d", path, section.Number)
		}
	}
	return source, nil
}

// ReadWordbookDir reads every .yml wordbook seed file under dir.
func ReadWordbookDir(dir string) ([]WordbookSource, error) {
	var sources []WordbookSource

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		source, err := ReadWordbookFile(path)
		if err != nil {
			return fmt.Errorf("ReadWordbookFile(%s) > %w", path, err)
		}
		sources = append(sources, source)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", dir, err)
	}

	return sources, nil
}

// Flatten assigns positions and section numbers and returns the source's
// words in study order. Section numbers from the file are preserved;
// positions restart at 1 for each wordbook.
func (s WordbookSource) Flatten() []Word {
	var words []Word
	position := 0
	for _, section := range s.Sections {
		for _, word := range section.Words {
			position++
			words = append(words, Word{
				Position: position,
				Section:  section.Number,
				Term:     word.Term,
				Meaning:  word.Meaning,
				Example:  word.Example,
			})
		}
	}
	return words
}
