// Package banner implements transient, auto-hiding status notifications
// ("snackbars") for flashbar applications.
//
// Three components make up the family:
//
//   - Banner observes a DisplayProps getter and owns the visible/hidden
//     state machine: it becomes visible when the severity changes to a
//     defined value, hides on dismiss (close button, timeout, or
//     programmatic close), and invokes the wired reset callback exactly
//     once per visible-to-hidden transition. Clickaway dismissals are
//     ignored entirely.
//
//   - QueryBanner adapts a status.QuerySource: when the source has no
//     status message nothing is mounted at all; otherwise an open banner
//     shows the message.
//
//   - MutationBanner adapts a status.MutationSource: an explicit status
//     message wins; otherwise a failed run is coerced into an error
//     banner carrying the failure reason's text; otherwise the banner
//     stays mounted but closed. The derivation is memoized so unrelated
//     re-renders do not disturb visibility state.
//
// The Snackbar widget is the rendering primitive underneath: it owns the
// auto-hide timer (6 seconds by default) and guarantees the timer is
// cancelled when the banner closes or unmounts.
package banner
