package editor

// ChangeEvent describes editor state after an event that changed it.
type ChangeEvent struct {
	Version  uint64
	Location Location
	OffsetY  int

	// Text is the whole document, joined as Save would write it.
	Text string
}

type changeKey struct {
	version uint64
	loc     Location
	offsetY int
}

func (e *Editor) changeKey() changeKey {
	return changeKey{
		version: e.view.Document().Version(),
		loc:     e.loc,
		offsetY: e.offsetY,
	}
}

func (e *Editor) notifyChange(before changeKey) {
	if e.cfg.OnChange == nil || e.changeKey() == before {
		return
	}
	e.cfg.OnChange(ChangeEvent{
		Version:  e.view.Document().Version(),
		Location: e.loc,
		OffsetY:  e.offsetY,
		Text:     e.view.Document().Text(),
	})
}
