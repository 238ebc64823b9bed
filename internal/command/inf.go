package command

import (
	"context"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/narust/reasoner/internal/concept"
	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/lineage"
	"github.com/narust/reasoner/internal/reasoner"
)

// inf handles `INF <target> [-detailed]` for target in memory, concepts,
// links, tasks, beliefs, questions, summary, parameters, plus the
// supplemented `lineage <task-id>` and `search-semantic <query>` targets
// (§6.2, SPEC_FULL.md domain-stack wiring).
func (d *Dispatcher) inf(arg string) []reasoner.Output {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return []reasoner.Output{errOut("INF: missing target")}
	}
	target := strings.ToLower(fields[0])
	rest := fields[1:]
	detailed := false
	for _, f := range rest {
		if f == "-detailed" {
			detailed = true
		}
	}

	switch target {
	case "memory":
		return d.infMemory()
	case "concepts":
		return d.infConcepts(detailed)
	case "links":
		return d.infLinks(detailed)
	case "tasks":
		return d.infTasks()
	case "beliefs":
		return d.infBeliefs(detailed)
	case "questions":
		return d.infQuestions()
	case "summary":
		return d.infSummary()
	case "parameters":
		return d.infParameters()
	case "lineage":
		if len(rest) == 0 {
			return []reasoner.Output{errOut("INF lineage: missing task id")}
		}
		return d.infLineage(rest[0])
	case "search-semantic":
		if len(rest) == 0 {
			return []reasoner.Output{errOut("INF search-semantic: missing query")}
		}
		return d.infSearchSemantic(strings.Join(rest, " "))
	default:
		return []reasoner.Output{errOut("INF: unknown target %q", target)}
	}
}

func (d *Dispatcher) infMemory() []reasoner.Output {
	m := d.Reasoner.Memory
	return []reasoner.Output{info("memory: %s / %s concepts",
		humanize.Comma(int64(m.Size())), humanize.Comma(int64(m.Capacity())))}
}

func (d *Dispatcher) infConcepts(detailed bool) []reasoner.Output {
	concepts := d.Reasoner.Memory.All()
	sort.Slice(concepts, func(i, j int) bool { return concepts[i].Priority() > concepts[j].Priority() })

	outputs := []reasoner.Output{info("%s concepts", humanize.Comma(int64(len(concepts))))}
	if !detailed {
		return outputs
	}
	for _, c := range concepts {
		outputs = append(outputs, comment("%s  priority=%.3f beliefs=%d questions=%d task-links=%d term-links=%d",
			c.Key(), c.Priority().Float64(), len(c.Beliefs), len(c.Questions), c.TaskLinks.Size(), c.TermLinks.Size()))
	}
	return outputs
}

func (d *Dispatcher) infLinks(detailed bool) []reasoner.Output {
	var taskLinks, termLinks int
	for _, c := range d.Reasoner.Memory.All() {
		taskLinks += c.TaskLinks.Size()
		termLinks += c.TermLinks.Size()
	}
	outputs := []reasoner.Output{info("%s task-links, %s term-links",
		humanize.Comma(int64(taskLinks)), humanize.Comma(int64(termLinks)))}
	if !detailed {
		return outputs
	}
	for _, c := range d.Reasoner.Memory.All() {
		for _, tl := range c.TermLinks.Items() {
			outputs = append(outputs, comment("%s -%s-> %s", c.Key(), tl.Template.Type, tl.Template.Target))
		}
	}
	return outputs
}

func (d *Dispatcher) infTasks() []reasoner.Output {
	b := d.Reasoner.Buffer
	return []reasoner.Output{info("task buffer: %d queued, %d novel",
		b.QueueLen(), b.NovelSize())}
}

func (d *Dispatcher) infBeliefs(detailed bool) []reasoner.Output {
	var total int
	var outputs []reasoner.Output
	for _, c := range d.Reasoner.Memory.All() {
		total += len(c.Beliefs)
		if detailed {
			for _, belief := range c.Beliefs {
				outputs = append(outputs, comment("%s", belief.String()))
			}
		}
	}
	return append([]reasoner.Output{info("%s beliefs", humanize.Comma(int64(total)))}, outputs...)
}

func (d *Dispatcher) infQuestions() []reasoner.Output {
	var total int
	var outputs []reasoner.Output
	for _, c := range d.Reasoner.Memory.All() {
		total += len(c.Questions)
		for _, q := range c.Questions {
			outputs = append(outputs, comment("%s", q.String()))
		}
	}
	return append([]reasoner.Output{info("%s open questions", humanize.Comma(int64(total)))}, outputs...)
}

func (d *Dispatcher) infSummary() []reasoner.Output {
	m := d.Reasoner.Memory
	b := d.Reasoner.Buffer
	return []reasoner.Output{info("cycle=%s concepts=%d/%d queued=%d novel=%d",
		humanize.Comma(d.Reasoner.Now()), m.Size(), m.Capacity(), b.QueueLen(), b.NovelSize())}
}

func (d *Dispatcher) infParameters() []reasoner.Output {
	p := d.Reasoner.Params
	return []reasoner.Output{info("concept_capacity=%d novel_task_capacity=%d term_links_per_cycle=%d max_stamp_length=%d volume=%d",
		p.ConceptCapacity, p.NovelTaskCapacity, p.TermLinksPerCycle, p.MaxStampLength, p.Volume)}
}

// findTask looks a task up by its persistent id across every place a live
// reasoner can still reference one: concept task-link bags and the task
// buffer's queue and novel bag. There is no central task index — tasks are
// only ever reachable through whichever owns a reference to them (§9's
// reference-counted DAG), so this walks all of them.
func (d *Dispatcher) findTask(id string) (*evidence.Task, bool) {
	for _, c := range d.Reasoner.Memory.All() {
		for _, tl := range c.TaskLinks.Items() {
			if tl.Task.PersistentID == id {
				return tl.Task, true
			}
		}
	}
	for _, t := range d.Reasoner.Buffer.Queue() {
		if t.PersistentID == id {
			return t, true
		}
	}
	for _, t := range d.Reasoner.Buffer.NovelItems() {
		if t.PersistentID == id {
			return t, true
		}
	}
	return nil, false
}

func (d *Dispatcher) infLineage(taskID string) []reasoner.Output {
	task, ok := d.findTask(taskID)
	if !ok {
		return []reasoner.Output{errOut("INF lineage: no such task %q", taskID)}
	}
	view, err := lineage.Build(task)
	if err != nil {
		return []reasoner.Output{errOut("INF lineage: %v", err)}
	}
	ancestors, err := view.Ancestors()
	if err != nil {
		return []reasoner.Output{errOut("INF lineage: %v", err)}
	}
	outputs := []reasoner.Output{info("%s: %d ancestors", task.Sentence.String(), len(ancestors))}
	for _, a := range ancestors {
		outputs = append(outputs, comment("%s", a))
	}
	return outputs
}

// infSearchSemantic rebuilds a fresh semantic index from the current
// concept set and queries it — there is no standing index to keep in sync
// with concept churn, and rebuilding per query keeps this purely an
// assistive lookup with no consistency burden on the reasoning core.
func (d *Dispatcher) infSearchSemantic(query string) []reasoner.Output {
	idx, err := concept.NewSemanticIndex(64)
	if err != nil {
		return []reasoner.Output{errOut("INF search-semantic: %v", err)}
	}
	ctx := context.Background()
	for _, c := range d.Reasoner.Memory.All() {
		if err := idx.Index(ctx, c); err != nil {
			return []reasoner.Output{errOut("INF search-semantic: %v", err)}
		}
	}
	related, err := idx.Related(ctx, query, 5)
	if err != nil {
		return []reasoner.Output{errOut("INF search-semantic: %v", err)}
	}
	outputs := []reasoner.Output{info("%d related concepts", len(related))}
	for _, key := range related {
		outputs = append(outputs, comment("%s", key))
	}
	return outputs
}
