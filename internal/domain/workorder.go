package domain

// WorkOrder holds at most one WorkItem per work type, in the order the
// types were first added.
//
// Put has replace-not-merge semantics: committing a second item for a work
// type overwrites the first one (keeping its position) instead of adding
// the quantities together. Committing core drilling with 5 holes and then
// with 3 holes leaves a single item with quantity 3.
type WorkOrder struct {
	order []WorkTypeID
	items map[WorkTypeID]WorkItem
}

func NewWorkOrder() *WorkOrder {
	return &WorkOrder{items: make(map[WorkTypeID]WorkItem)}
}

// Put stores item under its work type, replacing any existing item.
// It reports whether an existing item was replaced.
func (o *WorkOrder) Put(item WorkItem) bool {
	if o.items == nil {
		o.items = make(map[WorkTypeID]WorkItem)
	}
	_, replaced := o.items[item.WorkType]
	if !replaced {
		o.order = append(o.order, item.WorkType)
	}
	o.items[item.WorkType] = item
	return replaced
}

func (o *WorkOrder) Get(id WorkTypeID) (WorkItem, bool) {
	item, ok := o.items[id]
	return item, ok
}

// Remove deletes the item for id. It reports whether one existed.
func (o *WorkOrder) Remove(id WorkTypeID) bool {
	if _, ok := o.items[id]; !ok {
		return false
	}
	delete(o.items, id)
	for i, t := range o.order {
		if t == id {
			o.order = append(o.order[:i:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the work items in insertion order.
func (o *WorkOrder) Items() []WorkItem {
	out := make([]WorkItem, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.items[id])
	}
	return out
}

func (o *WorkOrder) Len() int { return len(o.order) }
