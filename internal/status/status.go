// Package status implements the persisted-state contract: a point-in-time
// snapshot of memory, the task buffer and the clocks that SAV/LOA exchange,
// with shared-task-reference normalization applied on load (§6.4).
package status

import (
	"fmt"

	"github.com/narust/reasoner/internal/budget"
	"github.com/narust/reasoner/internal/concept"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/link"
	"github.com/narust/reasoner/internal/memory"
	"github.com/narust/reasoner/internal/narsese"
	"github.com/narust/reasoner/internal/numeric"
	"github.com/narust/reasoner/internal/reasoner"
	"github.com/narust/reasoner/internal/taskbuf"
	"github.com/narust/reasoner/internal/truth"
)

// SentenceRecord is the wire shape of one judgement or question.
type SentenceRecord struct {
	ContentKey   string  `json:"content"`
	Punctuation  int     `json:"punct"`
	F            float64 `json:"f,omitempty"`
	C            float64 `json:"c,omitempty"`
	Analytic     bool    `json:"analytic,omitempty"`
	Revisable    bool    `json:"revisable,omitempty"`
	WasInput     bool    `json:"was_input,omitempty"`
	StampBase    []int64 `json:"stamp_base"`
	StampCreated int64   `json:"stamp_created"`
	StampSerial  int64   `json:"stamp_serial"`
}

// TaskRecord is the wire shape of one retained task, keyed by its
// PersistentID so every place that references it — the buffer, a
// task-link — can share the identical reconstructed pointer.
type TaskRecord struct {
	PersistentID string          `json:"id"`
	Sentence     SentenceRecord  `json:"sentence"`
	Budget       [3]float64      `json:"budget"`
	CreationTime int64           `json:"created"`
	Serial       int64           `json:"serial"`
	ParentID     string          `json:"parent_id,omitempty"`
	ParentBelief *SentenceRecord `json:"parent_belief,omitempty"`
}

// TaskLinkRecord references a retained task by id rather than embedding it,
// so the same task shared across several concepts round-trips as one value.
type TaskLinkRecord struct {
	TaskID  string     `json:"task_id"`
	Budget  [3]float64 `json:"budget"`
	Type    int        `json:"type"`
	Indices []int      `json:"indices"`
}

// TermLinkRecord is a template plus its live budget.
type TermLinkRecord struct {
	Target  string     `json:"target"`
	Type    int        `json:"type"`
	Indices []int      `json:"indices"`
	Budget  [3]float64 `json:"budget"`
}

// ConceptRecord is one concept's full state, everything but its
// term-link/task-link templates (those are rebuilt deterministically from
// the term on reconstruction).
type ConceptRecord struct {
	TermKey   string           `json:"term"`
	Budget    [3]float64       `json:"budget"`
	Beliefs   []SentenceRecord `json:"beliefs"`
	Questions []SentenceRecord `json:"questions"`
	TaskLinks []TaskLinkRecord `json:"task_links"`
	TermLinks []TermLinkRecord `json:"term_links"`
}

// Snapshot is the complete persisted-state payload (§6.4): memory, the
// task buffer, and the three clocks. Tasks are stored once, keyed by
// PersistentID; every reference elsewhere in the snapshot is by id.
type Snapshot struct {
	Tasks       map[string]TaskRecord `json:"tasks"`
	Concepts    []ConceptRecord       `json:"concepts"`
	BufferQueue []string              `json:"buffer_queue"`
	BufferNovel []string              `json:"buffer_novel"`

	Clock       int64 `json:"clock"`
	StampSerial int64 `json:"stamp_serial"`
	TaskSerial  int64 `json:"task_serial"`

	ConceptCapacity   int `json:"concept_capacity"`
	NovelTaskCapacity int `json:"novel_task_capacity"`
}

func budgetArray(b budget.Budget) [3]float64 {
	return [3]float64{b.P.Float64(), b.D.Float64(), b.Q.Float64()}
}

func budgetFromArray(a [3]float64) budget.Budget {
	return budget.New(a[0], a[1], a[2])
}

func captureSentence(s evidence.Sentence) SentenceRecord {
	r := SentenceRecord{
		ContentKey:   s.Content.String(),
		Punctuation:  int(s.Punctuation),
		StampBase:    append([]int64(nil), s.Stamp.Base...),
		StampCreated: s.Stamp.Created,
		StampSerial:  s.Stamp.Serial,
	}
	if s.Punctuation == evidence.Judgement {
		r.F = s.Truth.F.Float64()
		r.C = s.Truth.C.Float64()
		r.Analytic = s.Truth.Analytic
		r.Revisable = s.Revisable
	} else {
		r.WasInput = s.WasInput
	}
	return r
}

func restoreSentence(r SentenceRecord) (evidence.Sentence, error) {
	content, err := narsese.ParseTerm(r.ContentKey)
	if err != nil {
		return evidence.Sentence{}, fmt.Errorf("status: restoring sentence content %q: %w", r.ContentKey, err)
	}
	stamp := evidence.Stamp{
		Base:    append([]int64(nil), r.StampBase...),
		Created: r.StampCreated,
		Serial:  r.StampSerial,
	}
	if evidence.Punctuation(r.Punctuation) == evidence.Judgement {
		tv := truth.Truth{F: numeric.NewUF(r.F), C: numeric.NewUF(r.C), Analytic: r.Analytic}
		return evidence.NewJudgement(content, tv, stamp, r.Revisable), nil
	}
	return evidence.NewQuestion(content, stamp, r.WasInput), nil
}

// taskCollector walks memory/buffer once, assigning each distinct task a
// single record keyed by its PersistentID.
type taskCollector struct {
	tasks map[string]TaskRecord
}

func newTaskCollector() *taskCollector {
	return &taskCollector{tasks: make(map[string]TaskRecord)}
}

func (tc *taskCollector) add(t *evidence.Task) string {
	if t == nil {
		return ""
	}
	if _, ok := tc.tasks[t.PersistentID]; ok {
		return t.PersistentID
	}
	rec := TaskRecord{
		PersistentID: t.PersistentID,
		Sentence:     captureSentence(t.Sentence),
		Budget:       budgetArray(t.Budget),
		CreationTime: t.CreationTime,
		Serial:       t.Serial,
	}
	if t.Parent != nil {
		rec.ParentID = tc.add(t.Parent)
	}
	if t.ParentBelief != nil {
		pb := captureSentence(*t.ParentBelief)
		rec.ParentBelief = &pb
	}
	tc.tasks[t.PersistentID] = rec
	return t.PersistentID
}

// Capture builds a Snapshot of r's current state.
func Capture(r *reasoner.Reasoner) Snapshot {
	tc := newTaskCollector()
	snap := Snapshot{
		ConceptCapacity:   r.Memory.Capacity(),
		NovelTaskCapacity: r.Params.NovelTaskCapacity,
		Clock:             r.Now(),
	}

	for _, c := range r.Memory.All() {
		cr := ConceptRecord{
			TermKey: c.Term.String(),
			Budget:  budgetArray(c.Budget),
		}
		for _, b := range c.Beliefs {
			cr.Beliefs = append(cr.Beliefs, captureSentence(b))
		}
		for _, q := range c.Questions {
			cr.Questions = append(cr.Questions, captureSentence(q))
		}
		for _, tl := range c.TaskLinks.Items() {
			cr.TaskLinks = append(cr.TaskLinks, TaskLinkRecord{
				TaskID:  tc.add(tl.Task),
				Budget:  budgetArray(tl.Budget),
				Type:    int(tl.Type),
				Indices: append([]int(nil), tl.Indices...),
			})
		}
		for _, tl := range c.TermLinks.Items() {
			cr.TermLinks = append(cr.TermLinks, TermLinkRecord{
				Target:  tl.Template.Target,
				Type:    int(tl.Template.Type),
				Indices: append([]int(nil), tl.Template.Indices...),
				Budget:  budgetArray(tl.Budget),
			})
		}
		snap.Concepts = append(snap.Concepts, cr)
	}

	for _, t := range r.Buffer.Queue() {
		snap.BufferQueue = append(snap.BufferQueue, tc.add(t))
	}
	for _, t := range r.Buffer.NovelItems() {
		snap.BufferNovel = append(snap.BufferNovel, tc.add(t))
	}

	snap.Tasks = tc.tasks
	snap.StampSerial, snap.TaskSerial = r.SerialCounters()
	return snap
}

// taskBuilder reconstructs *evidence.Task values from records, resolving
// ParentID references and memoizing by PersistentID so every reference to
// the same id yields the identical pointer (§6.4's ownership invariant).
type taskBuilder struct {
	records map[string]TaskRecord
	built   map[string]*evidence.Task
}

func newTaskBuilder(records map[string]TaskRecord) *taskBuilder {
	return &taskBuilder{records: records, built: make(map[string]*evidence.Task)}
}

func (tb *taskBuilder) build(id string) (*evidence.Task, error) {
	if id == "" {
		return nil, nil
	}
	if t, ok := tb.built[id]; ok {
		return t, nil
	}
	rec, ok := tb.records[id]
	if !ok {
		return nil, fmt.Errorf("status: task id %q referenced but not present in snapshot", id)
	}
	sentence, err := restoreSentence(rec.Sentence)
	if err != nil {
		return nil, err
	}
	var parent *evidence.Task
	if rec.ParentID != "" {
		parent, err = tb.build(rec.ParentID)
		if err != nil {
			return nil, err
		}
	}
	var parentBelief *evidence.Sentence
	if rec.ParentBelief != nil {
		pb, err := restoreSentence(*rec.ParentBelief)
		if err != nil {
			return nil, err
		}
		parentBelief = &pb
	}
	t := &evidence.Task{
		PersistentID: rec.PersistentID,
		Sentence:     sentence,
		Budget:       budgetFromArray(rec.Budget),
		CreationTime: rec.CreationTime,
		Serial:       rec.Serial,
		Parent:       parent,
		ParentBelief: parentBelief,
	}
	tb.built[id] = t
	return t, nil
}

// Restore replaces r's memory and buffer with the state in snap. It never
// partially mutates r: the new Memory/Buffer are built up from scratch and
// only swapped in once every reference has resolved without error, so a
// malformed payload leaves the old state untouched (§6.4, §7).
func Restore(r *reasoner.Reasoner, snap Snapshot) error {
	tb := newTaskBuilder(snap.Tasks)

	newMemory := memory.New(snap.ConceptCapacity)
	for _, cr := range snap.Concepts {
		t, err := narsese.ParseTerm(cr.TermKey)
		if err != nil {
			return fmt.Errorf("status: restoring concept term %q: %w", cr.TermKey, err)
		}
		c := concept.New(t, budgetFromArray(cr.Budget))
		for _, b := range cr.Beliefs {
			s, err := restoreSentence(b)
			if err != nil {
				return err
			}
			c.Beliefs = append(c.Beliefs, s)
		}
		for _, q := range cr.Questions {
			s, err := restoreSentence(q)
			if err != nil {
				return err
			}
			c.Questions = append(c.Questions, s)
		}
		for _, tlr := range cr.TaskLinks {
			task, err := tb.build(tlr.TaskID)
			if err != nil {
				return err
			}
			tl := link.NewTaskLink(task, budgetFromArray(tlr.Budget), link.Type(tlr.Type), tlr.Indices, concept.DefaultNoveltyRecords)
			c.TaskLinks.PutIn(tl)
		}
		for _, tlr := range cr.TermLinks {
			tl := link.TermLink{
				Template: link.Template{Target: tlr.Target, Type: link.Type(tlr.Type), Indices: tlr.Indices},
				Budget:   budgetFromArray(tlr.Budget),
			}
			c.TermLinks.PutIn(tl)
		}
		newMemory.Restore(c)
	}

	newBuffer := taskbuf.New(snap.NovelTaskCapacity)
	var queued []*evidence.Task
	for _, id := range snap.BufferQueue {
		t, err := tb.build(id)
		if err != nil {
			return err
		}
		queued = append(queued, t)
	}
	newBuffer.RestoreQueue(queued)
	for _, id := range snap.BufferNovel {
		t, err := tb.build(id)
		if err != nil {
			return err
		}
		newBuffer.RestoreNovel(t)
	}

	r.ReplaceState(newMemory, newBuffer, snap.Clock, snap.StampSerial, snap.TaskSerial)
	return nil
}
