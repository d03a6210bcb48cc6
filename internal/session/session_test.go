package session

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/cryocare-tools/cryocare-setup/internal/configdoc"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

func TestNew_Empty(t *testing.T) {
	s := New()
	if len(s.Odd()) != 0 || len(s.Even()) != 0 {
		t.Error("New session should have empty selections")
	}
	if s.Odd() == nil || s.Even() == nil {
		t.Error("Empty selections should be empty slices, not nil")
	}
}

func TestSelect_FiltersAndPreservesOrder(t *testing.T) {
	s := New()

	if err := s.Select(model.SelectionOdd, []string{"a.mrc", "b.txt", "c.tif"}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	expected := []string{"a.mrc", "c.tif"}
	if !reflect.DeepEqual(s.Odd(), expected) {
		t.Errorf("Odd = %v, expected %v", s.Odd(), expected)
	}
	if len(s.Even()) != 0 {
		t.Error("Even selection should be untouched")
	}
}

func TestSelect_ReplacesPreviousSelection(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionEven, []string{"old_1.mrc", "old_2.mrc"})

	if err := s.Select(model.SelectionEven, []string{"new.tif"}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	expected := []string{"new.tif"}
	if !reflect.DeepEqual(s.Even(), expected) {
		t.Errorf("Even = %v, expected %v (no merge)", s.Even(), expected)
	}
}

func TestSelect_NoValidFilesKeepsPrevious(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionOdd, []string{"keep.mrc"})

	calls := 0
	s.Subscribe(func(model.FileSelection) { calls++ })

	err := s.Select(model.SelectionOdd, []string{"notes.txt", "image.png"})
	if !errors.Is(err, model.ErrNoValidFiles) {
		t.Fatalf("Expected ErrNoValidFiles, got %v", err)
	}

	if !reflect.DeepEqual(s.Odd(), []string{"keep.mrc"}) {
		t.Errorf("Previous selection should be kept, got %v", s.Odd())
	}
	if calls != 0 {
		t.Error("Listeners should not be notified on rejected selection")
	}
}

func TestSelect_CancelIsNoop(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionOdd, []string{"keep.mrc"})

	calls := 0
	s.Subscribe(func(model.FileSelection) { calls++ })

	if err := s.Select(model.SelectionOdd, nil); err != nil {
		t.Errorf("Cancelled selection should not error, got %v", err)
	}
	if !reflect.DeepEqual(s.Odd(), []string{"keep.mrc"}) {
		t.Errorf("Cancelled selection should keep state, got %v", s.Odd())
	}
	if calls != 0 {
		t.Error("Listeners should not be notified on cancel")
	}
}

func TestSelect_UnknownKind(t *testing.T) {
	s := New()
	if err := s.Select(model.SelectionKind("both"), []string{"a.mrc"}); err == nil {
		t.Error("Expected error for unknown selection kind")
	}
}

func TestSelect_NotifiesAllListeners(t *testing.T) {
	s := New()

	var first, second []model.FileSelection
	s.Subscribe(func(sel model.FileSelection) { first = append(first, sel) })
	s.Subscribe(func(sel model.FileSelection) { second = append(second, sel) })
	s.Subscribe(nil)

	_ = s.Select(model.SelectionEven, []string{"e.mrc"})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Expected one notification per listener, got %d and %d", len(first), len(second))
	}
	if first[0].Kind != model.SelectionEven || first[0].Joined() != "e.mrc" {
		t.Errorf("Unexpected notification: %+v", first[0])
	}
}

func TestSelection_ReturnsCopy(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionOdd, []string{"a.mrc"})

	sel := s.Selection(model.SelectionOdd)
	sel.Paths[0] = "mutated.mrc"

	if s.Odd()[0] != "a.mrc" {
		t.Error("Selection should return a copy")
	}
}

func TestDocuments_ArePureFunctionsOfState(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionOdd, []string{"o1.mrc", "o2.mrc"})
	_ = s.Select(model.SelectionEven, []string{"e1.mrc", "e2.mrc"})

	for _, stage := range model.AllStages {
		first, err := s.Document(stage)
		if err != nil {
			t.Fatalf("Document(%s) failed: %v", stage, err)
		}
		second, _ := s.Document(stage)

		a, _ := configdoc.Encode(first)
		b, _ := configdoc.Encode(second)
		if !bytes.Equal(a, b) {
			t.Errorf("%s document differs between two builds", stage)
		}
	}
}

func TestDocuments_UseSelections(t *testing.T) {
	s := New()
	_ = s.Select(model.SelectionOdd, []string{"o.mrc"})
	_ = s.Select(model.SelectionEven, []string{"e.tif"})

	ext := s.ExtractionConfig()
	if !reflect.DeepEqual(ext.Odd, []string{"o.mrc"}) || !reflect.DeepEqual(ext.Even, []string{"e.tif"}) {
		t.Errorf("Extraction config should carry selections, got odd=%v even=%v", ext.Odd, ext.Even)
	}

	pred := s.PredictionConfig()
	if !reflect.DeepEqual(pred.Odd, []string{"o.mrc"}) || !reflect.DeepEqual(pred.Even, []string{"e.tif"}) {
		t.Errorf("Prediction config should carry selections, got odd=%v even=%v", pred.Odd, pred.Even)
	}
}

func TestTrainingConfig_IndependentOfSelections(t *testing.T) {
	empty := New()
	before, _ := configdoc.Encode(empty.TrainingConfig())

	populated := New()
	_ = populated.Select(model.SelectionOdd, []string{"o.mrc"})
	_ = populated.Select(model.SelectionEven, []string{"e.mrc"})
	after, _ := configdoc.Encode(populated.TrainingConfig())

	if !bytes.Equal(before, after) {
		t.Error("Training config must not depend on the file selections")
	}
}

func TestDocument_InvalidStage(t *testing.T) {
	if _, err := New().Document(model.Stage(7)); err == nil {
		t.Error("Expected error for invalid stage")
	}
}
