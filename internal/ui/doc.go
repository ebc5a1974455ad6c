// Package ui contains the Bubble Tea program that powers the chain options
// menu. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering, and
// state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a confirmation is open, key presses go to the confirm form. All
//     other messages are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (for example, navigation for
//     key presses or backend updates).
//   - Navigation helpers (internal/ui/navigation.go) manage the stack of menu
//     levels and cursor movement. Filter/input helpers (internal/ui/input.go)
//     keep all text entry concerns isolated from the Bubble Tea event loop.
//
// Action results:
//   - Close ends the program. The host then acts on the last screen request.
//   - Reopen reloads the submenu on screen and keeps its cursor.
//   - Anything else returns to the chain options and rebuilds them. When the
//     root layer no longer heads a chain the menu closes instead.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering, section headers, and viewport calculations.
//   - The chain and recorder stores in internal/state remember the last polled
//     snapshot so the dispatcher can tell when the menu has to be rebuilt.
//   - Command execution is handled through the internal/ui/command package,
//     letting actions run asynchronously via the central command bus.
//
// Backend interactions:
//   - A backend.Watcher polls the layer graph and the audio recorder; Update
//     waits for those events and hands them to applyBackendEvent, which
//     rebuilds the chain options and any open submenu.
//   - Asynchronous menu loaders run via tea.Cmd values returned by helper
//     functions (e.g., loadMenuCmd). When a loader completes, the typed handler
//     for categoryLoadedMsg pushes the new level onto the stack.
package ui
