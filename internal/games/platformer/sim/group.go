package sim

import (
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Group is an ordered partition of entities. Membership is mirrored by the
// entity's own group field, which is the source of truth for behaviour.
type Group struct {
	kind  GroupKind
	items []Entity
}

func newGroup(kind GroupKind) *Group {
	return &Group{kind: kind}
}

// Kind returns the group kind.
func (g *Group) Kind() GroupKind { return g.kind }

// Len returns the number of members.
func (g *Group) Len() int { return len(g.items) }

// Items returns the members in insertion order. The slice must not be modified.
func (g *Group) Items() []Entity { return g.items }

func (g *Group) add(e Entity) {
	g.items = append(g.items, e)
}

func (g *Group) remove(e Entity) bool {
	i := slices.Index(g.items, e)
	if i < 0 {
		return false
	}
	g.items = slices.Delete(g.items, i, i+1)
	return true
}

// intent is a queued group change. to == GroupNone removes the entity.
type intent struct {
	e  Entity
	to GroupKind
}

// queue records a group change to apply at the next Flush. The entity is
// excluded from collision queries and updates until then.
func (l *Level) queue(e Entity, to GroupKind) {
	e.base().pending = true
	l.intents = append(l.intents, intent{e: e, to: to})
}

func (l *Level) spawn(e Entity, to GroupKind) { l.queue(e, to) }

func (l *Level) move(e Entity, to GroupKind) { l.queue(e, to) }

func (l *Level) kill(e Entity) { l.queue(e, GroupNone) }

// place adds an entity immediately. Only used while populating.
func (l *Level) place(e Entity, to GroupKind) {
	e.base().group = to
	if g := l.group(to); g != nil {
		g.add(e)
	}
}

// Flush applies queued group changes in the order they were requested.
func (l *Level) Flush() {
	for _, in := range l.intents {
		b := in.e.base()
		if g := l.group(b.group); g != nil {
			g.remove(in.e)
		}
		if g := l.group(in.to); g != nil {
			g.add(in.e)
		}
		b.group = in.to
		b.pending = false
	}
	clear(l.intents)
	l.intents = l.intents[:0]
}

// Pending returns the number of queued group changes.
func (l *Level) Pending() int { return len(l.intents) }

func (l *Level) group(kind GroupKind) *Group {
	if int(kind) >= groupKinds {
		return nil
	}
	return l.groups[kind]
}

// Group returns the live group of the given kind, or nil for GroupNone and
// GroupDormant.
func (l *Level) Group(kind GroupKind) *Group { return l.group(kind) }

// collide returns the first settled entity of the given groups that
// overlaps r, or nil.
func (l *Level) collide(r core.RectF, kinds ...GroupKind) Entity {
	return l.collideWhere(r, nil, kinds...)
}

// collideWhere is collide restricted to entities accepted by keep.
// A nil keep accepts everything.
func (l *Level) collideWhere(r core.RectF, keep func(Entity) bool, kinds ...GroupKind) Entity {
	for _, k := range kinds {
		g := l.group(k)
		if g == nil {
			continue
		}
		for _, e := range g.items {
			b := e.base()
			if b.pending || !b.Rect.Intersects(r) {
				continue
			}
			if keep == nil || keep(e) {
				return e
			}
		}
	}
	return nil
}

// supported reports whether solid ground lies one pixel below r.
func (l *Level) supported(r core.RectF) bool {
	return l.collide(r.Offset(0, 1), GroupTerrain, GroupBricks, GroupBoxes) != nil
}

// updateGroup advances every settled member of a group, then flushes.
func (l *Level) updateGroup(kind GroupKind) {
	for _, e := range l.groups[kind].items {
		if e.base().pending {
			continue
		}
		e.update(l)
	}
	l.Flush()
}
