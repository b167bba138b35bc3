package terminal

// keyNames maps config names to non-rune keys
var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,

	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"page_up":   KeyPageUp,
	"page_down": KeyPageDown,

	"ctrl_a": KeyCtrlA, "ctrl_b": KeyCtrlB, "ctrl_c": KeyCtrlC, "ctrl_d": KeyCtrlD,
	"ctrl_e": KeyCtrlE, "ctrl_f": KeyCtrlF, "ctrl_g": KeyCtrlG, "ctrl_k": KeyCtrlK,
	"ctrl_l": KeyCtrlL, "ctrl_n": KeyCtrlN, "ctrl_o": KeyCtrlO, "ctrl_p": KeyCtrlP,
	"ctrl_q": KeyCtrlQ, "ctrl_r": KeyCtrlR, "ctrl_s": KeyCtrlS, "ctrl_t": KeyCtrlT,
	"ctrl_u": KeyCtrlU, "ctrl_v": KeyCtrlV, "ctrl_w": KeyCtrlW, "ctrl_x": KeyCtrlX,
	"ctrl_y": KeyCtrlY, "ctrl_z": KeyCtrlZ,
}

// KeyByName resolves a lowercase config name such as "up" or "ctrl_c"
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
