// Package config loads shortcut definitions from structured configuration
// data and converts them to and from the shortcut package's types.
//
// A configuration file maps action names to group definitions. Every field
// has a defined default: a missing repeats flag means single-press, and an
// absent modifier requirement means the channel is ignored. The YAML form:
//
//	move_left:
//	  repeats: true
//	  shortcuts:
//	    - key: "KeyA"
//	    - key: "ArrowLeft"
//
//	save:
//	  shortcuts:
//	    - key: "KeyS"
//	      modifiers:
//	        control: RequirePressed
//
// JSON and TOML use the same shape. Lua files evaluate a chunk that returns
// the equivalent table:
//
//	return {
//	    save = {
//	        shortcuts = {
//	            { key = "KeyS", modifiers = { control = "RequirePressed" } },
//	        },
//	    },
//	}
//
// Load dispatches on file extension; LoadAndRegister feeds a
// shortcut.Registry directly. Watch re-loads a file when it changes on disk
// and delivers the fresh groups on a channel.
//
// Unknown key names and unknown requirement names are configuration errors,
// reported at load time. Definitions round-trip: FromGroup produces the
// GroupDef that rebuilds an identical group.
package config
