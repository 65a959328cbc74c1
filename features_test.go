package metaoxide_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/yfedoseev/meta-oxide"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "extraction",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// scenarioState holds per-scenario state for step definitions.
type scenarioState struct {
	doc     string
	baseURL string
	format  string
	items   []*metaoxide.Item
	output  []byte
	err     error
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &scenarioState{}

	ctx.Step(`^the document:$`, s.theDocument)
	ctx.Step(`^the base URL "([^"]*)"$`, s.theBaseURL)
	ctx.Step(`^I extract (microformats|rdfa|microdata)$`, s.iExtract)
	ctx.Step(`^extraction succeeds$`, s.extractionSucceeds)
	ctx.Step(`^extraction fails with "([^"]*)"$`, s.extractionFailsWith)
	ctx.Step(`^there (?:is|are) (\d+) items?$`, s.thereAreItems)
	ctx.Step(`^item (\d+) has types "([^"]*)"$`, s.itemHasTypes)
	ctx.Step(`^item (\d+) has properties "([^"]*)"$`, s.itemHasProperties)
	ctx.Step(`^item (\d+) property "([^"]*)" is (text|url|datetime) "([^"]*)"$`, s.itemPropertyIs)
	ctx.Step(`^item (\d+) has a blank node subject$`, s.itemHasBlankSubject)
	ctx.Step(`^extracting again gives the same output$`, s.extractingAgain)
}

func (s *scenarioState) theDocument(doc *godog.DocString) error {
	s.doc = doc.Content
	return nil
}

func (s *scenarioState) theBaseURL(base string) error {
	s.baseURL = base
	return nil
}

func (s *scenarioState) extract() ([]*metaoxide.Item, error) {
	switch s.format {
	case "microformats":
		byType, err := metaoxide.ExtractMicroformats(s.doc, s.baseURL)
		if err != nil {
			return nil, err
		}
		// An item with several types is listed under each of them.
		var items []*metaoxide.Item
		for _, k := range slices.Sorted(maps.Keys(byType)) {
			for _, it := range byType[k] {
				if !slices.Contains(items, it) {
					items = append(items, it)
				}
			}
		}
		return items, nil
	case "rdfa":
		return metaoxide.ExtractRDFa(s.doc, s.baseURL)
	default:
		return metaoxide.ExtractMicrodata(s.doc, s.baseURL)
	}
}

func (s *scenarioState) iExtract(format string) error {
	s.format = format
	s.items, s.err = s.extract()
	if s.err == nil {
		s.output, s.err = json.Marshal(s.items)
	}
	return nil
}

func (s *scenarioState) extractionSucceeds() error {
	return s.err
}

func (s *scenarioState) extractionFailsWith(msg string) error {
	if s.err == nil {
		return errors.New("expected an error, got none")
	}
	if !strings.Contains(s.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, s.err)
	}
	return nil
}

func (s *scenarioState) thereAreItems(n int) error {
	if s.err != nil {
		return s.err
	}
	if len(s.items) != n {
		return fmt.Errorf("expected %d items, got %d: %s", n, len(s.items), s.output)
	}
	return nil
}

func (s *scenarioState) item(n int) (*metaoxide.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if n < 1 || n > len(s.items) {
		return nil, fmt.Errorf("no item %d in %s", n, s.output)
	}
	return s.items[n-1], nil
}

func (s *scenarioState) itemHasTypes(n int, list string) error {
	it, err := s.item(n)
	if err != nil {
		return err
	}
	want := strings.Split(list, ",")
	if !slices.Equal(it.Types, want) {
		return fmt.Errorf("expected types %q, got %q", want, it.Types)
	}
	return nil
}

func (s *scenarioState) itemHasProperties(n int, list string) error {
	it, err := s.item(n)
	if err != nil {
		return err
	}
	want := strings.Split(list, ",")
	if got := it.Properties.Keys(); !slices.Equal(got, want) {
		return fmt.Errorf("expected properties %q, got %q", want, got)
	}
	return nil
}

func (s *scenarioState) itemPropertyIs(n int, name, kind, value string) error {
	it, err := s.item(n)
	if err != nil {
		return err
	}
	v, ok := it.Properties.First(name)
	if !ok {
		return fmt.Errorf("item %d has no property %q: %s", n, name, s.output)
	}
	if v.Kind.String() != kind || v.Value != value {
		return fmt.Errorf("expected %s %q, got %s %q", kind, value, v.Kind, v.Value)
	}
	return nil
}

func (s *scenarioState) itemHasBlankSubject(n int) error {
	it, err := s.item(n)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(it.Subject, "_:") {
		return fmt.Errorf("expected a blank node subject, got %q", it.Subject)
	}
	return nil
}

func (s *scenarioState) extractingAgain() error {
	if s.err != nil {
		return s.err
	}
	items, err := s.extract()
	if err != nil {
		return err
	}
	again, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if string(again) != string(s.output) {
		return fmt.Errorf("outputs differ:\n%s\n%s", s.output, again)
	}
	return nil
}
