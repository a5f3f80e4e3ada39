package event

// HandlerFunc handles a routed event. sender is the node whose handler list
// is being run; args.Base().Source is the node the event was raised on.
type HandlerFunc func(sender Target, args Args)

type entry struct {
	fn               HandlerFunc
	handledEventsToo bool
	sub              *Subscription
}

// Subscription is returned by Store.Add. Cancel removes the handler.
type Subscription struct {
	store            *Store
	event            *RoutedEvent
	fn               HandlerFunc
	handledEventsToo bool
	removed          bool
}

// Event returns the subscribed event.
func (s *Subscription) Event() *RoutedEvent { return s.event }

// Cancel removes the handler. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s != nil && s.store != nil {
		s.store.Remove(s)
	}
}

// Store holds one node's instance handlers, in subscription order per event.
// The zero value is ready to use.
type Store struct {
	handlers map[*RoutedEvent][]*Subscription
}

// Add appends fn to the handlers for ev.
func (s *Store) Add(ev *RoutedEvent, fn HandlerFunc, handledEventsToo bool) *Subscription {
	if s.handlers == nil {
		s.handlers = make(map[*RoutedEvent][]*Subscription)
	}
	sub := &Subscription{store: s, event: ev, fn: fn, handledEventsToo: handledEventsToo}
	s.handlers[ev] = append(s.handlers[ev], sub)
	return sub
}

// Remove removes sub, reporting whether it was present.
func (s *Store) Remove(sub *Subscription) bool {
	if sub == nil || sub.removed || sub.store != s {
		return false
	}
	list := s.handlers[sub.event]
	for i, existing := range list {
		if existing == sub {
			s.handlers[sub.event] = append(list[:i:i], list[i+1:]...)
			if len(s.handlers[sub.event]) == 0 {
				delete(s.handlers, sub.event)
			}
			sub.removed = true
			return true
		}
	}
	return false
}

// Count returns the number of handlers for ev.
func (s *Store) Count(ev *RoutedEvent) int {
	if s == nil {
		return 0
	}
	return len(s.handlers[ev])
}

// Len returns the total number of handlers across all events.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, list := range s.handlers {
		n += len(list)
	}
	return n
}

func (s *Store) entries(ev *RoutedEvent) []entry {
	if s == nil {
		return nil
	}
	list := s.handlers[ev]
	out := make([]entry, len(list))
	for i, sub := range list {
		out[i] = entry{fn: sub.fn, handledEventsToo: sub.handledEventsToo, sub: sub}
	}
	return out
}
