package bridge

import (
	"github.com/go-drift/bridge/pkg/env"
	"github.com/go-drift/bridge/pkg/views"
)

// NewActionHandle wraps a handler function in an action handle owned by the
// caller. Actions nested in a lowered view are minted by the view wrap
// instead and are owned by the view handle.
func NewActionHandle(fn func(*env.Environment)) Handle {
	checkThread("bridge.NewActionHandle")
	return newHandle(kindAction, views.NewAction(fn))
}

// CallAction invokes the handler behind an action handle with the
// environment behind a context handle. The handler runs synchronously on
// the calling thread; any binding writes it performs notify their watchers
// before CallAction returns. There is no return value and no error surface:
// failures inside the handler are native concerns.
func CallAction(action, context Handle) {
	checkThread("bridge.CallAction")
	av, ok := lookup("bridge.CallAction", action, kindAction)
	if !ok {
		return
	}
	e := ContextEnv(context)
	if e == nil {
		return
	}
	av.(*views.Action).Invoke(e)
}

// DropAction destroys a standalone action handle. Actions owned by a view
// are dropped with the view; dropping them separately is misuse.
func DropAction(h Handle) {
	checkThread("bridge.DropAction")
	release("bridge.DropAction", h, kindAction)
}
