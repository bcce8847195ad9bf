package list

// Observer is the interface for controller event observers
type Observer interface {
	OnEvent(event Event)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(event Event)

// OnEvent calls the observer function
func (f ObserverFunc) OnEvent(event Event) {
	f(event)
}

// OnType wraps an observer so it only receives events of the given type
func OnType(eventType string, observer Observer) Observer {
	return ObserverFunc(func(event Event) {
		if event.GetType() == eventType {
			observer.OnEvent(event)
		}
	})
}
