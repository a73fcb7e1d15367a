package activity

import (
	"errors"
	"strings"
	"testing"
)

// act builds an activity with FS predecessors for the common case.
func act(id string, duration int, preds ...string) Activity {
	a := Activity{ID: id, Name: "Activity " + id, Duration: duration}
	for _, p := range preds {
		a.Predecessors = append(a.Predecessors, Predecessor{ActivityID: p, Relation: FinishToStart})
	}
	return a
}

func TestValidate_Clean(t *testing.T) {
	t.Parallel()
	acts := []Activity{
		act("A", 5),
		act("B", 3, "A"),
		act("C", 2, "A", "B"),
	}
	if errs := Validate(acts); len(errs) != 0 {
		t.Errorf("Validate = %v, want no errors", errs)
	}
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()
	if errs := Validate(nil); errs != nil {
		t.Errorf("Validate(nil) = %v, want nil", errs)
	}
}

func TestValidate_UnknownPredecessor(t *testing.T) {
	t.Parallel()
	acts := []Activity{
		act("A", 5),
		act("B", 3, "MISSING"),
	}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(&errs[0], ErrUnknownPredecessor) {
		t.Errorf("got %v, want ErrUnknownPredecessor", errs[0].Err)
	}
	if errs[0].Category != ValCatUnknownPredecessor {
		t.Errorf("Category = %q, want %q", errs[0].Category, ValCatUnknownPredecessor)
	}
	if errs[0].ActivityID != "B" {
		t.Errorf("ActivityID = %q, want B", errs[0].ActivityID)
	}
}

func TestValidate_SelfReference(t *testing.T) {
	t.Parallel()
	acts := []Activity{act("A", 5, "A")}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(&errs[0], ErrSelfReference) {
		t.Errorf("got %v, want ErrSelfReference", errs[0].Err)
	}
}

func TestValidate_InvalidRelation(t *testing.T) {
	t.Parallel()
	acts := []Activity{
		act("A", 5),
		{ID: "B", Duration: 3, Predecessors: []Predecessor{{ActivityID: "A", Relation: "XX"}}},
	}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(&errs[0], ErrInvalidRelation) {
		t.Errorf("got %v, want ErrInvalidRelation", errs[0].Err)
	}
}

func TestValidate_EmptyRelationRejected(t *testing.T) {
	t.Parallel()
	// The relation set is closed; an empty string is not defaulted.
	acts := []Activity{
		act("A", 5),
		{ID: "B", Duration: 3, Predecessors: []Predecessor{{ActivityID: "A"}}},
	}
	errs := Validate(acts)
	if len(errs) != 1 || !errors.Is(&errs[0], ErrInvalidRelation) {
		t.Errorf("got %v, want one ErrInvalidRelation", errs)
	}
}

func TestValidate_MissingID(t *testing.T) {
	t.Parallel()
	acts := []Activity{{Name: "unnamed", Duration: 2}}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(&errs[0], ErrMissingID) {
		t.Errorf("got %v, want ErrMissingID", errs[0].Err)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	t.Parallel()
	acts := []Activity{act("A", 5), act("A", 3)}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !errors.Is(&errs[0], ErrDuplicateID) {
		t.Errorf("got %v, want ErrDuplicateID", errs[0].Err)
	}
}

func TestValidate_NegativeDuration(t *testing.T) {
	t.Parallel()
	acts := []Activity{act("A", -1)}
	errs := Validate(acts)
	if len(errs) != 1 || !errors.Is(&errs[0], ErrNegativeDuration) {
		t.Errorf("got %v, want one ErrNegativeDuration", errs)
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	t.Parallel()
	// One predecessor entry that is both unknown and mistyped, plus a
	// self-reference on another activity: three independent findings.
	acts := []Activity{
		{ID: "A", Duration: 5, Predecessors: []Predecessor{{ActivityID: "GHOST", Relation: "??"}}},
		act("B", 3, "B"),
	}
	errs := Validate(acts)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	var unknown, invalid, self bool
	for i := range errs {
		switch {
		case errors.Is(&errs[i], ErrUnknownPredecessor):
			unknown = true
		case errors.Is(&errs[i], ErrInvalidRelation):
			invalid = true
		case errors.Is(&errs[i], ErrSelfReference):
			self = true
		}
	}
	if !unknown || !invalid || !self {
		t.Errorf("missing findings (unknown=%v invalid=%v self=%v): %v", unknown, invalid, self, errs)
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()
	acts := []Activity{act("B", 3, "MISSING"), act("A", 5)}
	errs := Validate(acts)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	msg := errs[0].Error()
	if !strings.Contains(msg, "B") || !strings.Contains(msg, "MISSING") {
		t.Errorf("message %q should name the activity and the missing predecessor", msg)
	}
}

func TestMessages(t *testing.T) {
	t.Parallel()
	if got := Messages(nil); got != nil {
		t.Errorf("Messages(nil) = %v, want nil", got)
	}
	errs := Validate([]Activity{act("A", 5, "X")})
	msgs := Messages(errs)
	if len(msgs) != 1 || msgs[0] == "" {
		t.Errorf("Messages = %v, want one non-empty string", msgs)
	}
}

func TestDetectCycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		acts []Activity
		want bool
	}{
		{
			name: "empty",
			acts: nil,
			want: false,
		},
		{
			name: "linear chain",
			acts: []Activity{act("A", 1), act("B", 1, "A"), act("C", 1, "B")},
			want: false,
		},
		{
			name: "diamond",
			acts: []Activity{act("A", 1), act("B", 1, "A"), act("C", 1, "A"), act("D", 1, "B", "C")},
			want: false,
		},
		{
			name: "self loop",
			acts: []Activity{act("A", 1, "A")},
			want: true,
		},
		{
			name: "two node cycle",
			acts: []Activity{act("A", 1, "B"), act("B", 1, "A")},
			want: true,
		},
		{
			name: "transitive cycle",
			acts: []Activity{act("A", 1, "C"), act("B", 1, "A"), act("C", 1, "B")},
			want: true,
		},
		{
			name: "cycle in disconnected component",
			acts: []Activity{act("A", 1), act("B", 1, "C"), act("C", 1, "B")},
			want: true,
		},
		{
			name: "unknown predecessor is not a cycle",
			acts: []Activity{act("A", 1, "GHOST")},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectCycles(tt.acts); got != tt.want {
				t.Errorf("DetectCycles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMilestone(t *testing.T) {
	t.Parallel()
	if !(Activity{ID: "M", Duration: 0}).Milestone() {
		t.Error("zero duration should imply milestone")
	}
	if !(Activity{ID: "M", Duration: 3, IsMilestone: true}).Milestone() {
		t.Error("declared milestone should report true regardless of duration")
	}
	if (Activity{ID: "A", Duration: 3}).Milestone() {
		t.Error("plain activity should not be a milestone")
	}
}

func TestIndex_LaterDuplicateWins(t *testing.T) {
	t.Parallel()
	byID := Index([]Activity{act("A", 1), act("A", 9)})
	if byID["A"].Duration != 9 {
		t.Errorf("Duration = %d, want 9", byID["A"].Duration)
	}
}
