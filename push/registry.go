package push

import "sync"

type Set map[string]struct{}

// Listener is one device listening on a topic.
type Listener struct {
	ID       string
	Username string
	Payloads chan map[string]string
}

// Registry maps topics to their live listeners.
type Registry struct {
	mu        sync.RWMutex
	listeners map[string]*Listener // map listener ID -> listener
	topics    map[string]Set       // map topic -> listener IDs
}

func NewRegistry() *Registry {
	return &Registry{
		listeners: make(map[string]*Listener),
		topics:    make(map[string]Set),
	}
}

// GetListeners returns the listeners of a topic, nil if there are none.
func (r *Registry) GetListeners(topic string) []*Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.topics[topic]
	if !ok {
		return nil
	}
	var active []*Listener
	for id := range members {
		if l, exists := r.listeners[id]; exists {
			active = append(active, l)
		}
	}
	return active
}

// Subscribe registers a listener on a topic, creating the topic on the fly.
func (r *Registry) Subscribe(topic string, listener *Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners[listener.ID] = listener
	if _, ok := r.topics[topic]; !ok {
		r.topics[topic] = make(Set)
	}
	r.topics[topic][listener.ID] = struct{}{}
}

// Unsubscribe removes a listener; a topic left without listeners is dropped.
func (r *Registry) Unsubscribe(topic string, listenerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, listenerID)
	if members, ok := r.topics[topic]; ok {
		delete(members, listenerID)
		if len(members) == 0 {
			delete(r.topics, topic)
		}
	}
}

func (r *Registry) Count(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}
