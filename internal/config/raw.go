package config

// rawField is one decoded field of an entry. Value is nil when the field
// was present but could not be read as an integer; Err says why.
type rawField struct {
	Value  *int
	Err    error
	Source Source
}

// rawEntry is a top-level entry as found in the document, before
// validation. Fields holds every key of the entry object, known or not.
type rawEntry struct {
	Name    string
	Source  Source
	Invalid error // set when the entry value is not an object
	Fields  map[string]rawField
}

// RawWindowSetting mirrors WindowSetting with pointer fields so that an
// absent value can be told apart from zero.
type RawWindowSetting struct {
	Width  *int
	Height *int
	X      *int
	Y      *int
	Repeat *int
}

// Complete reports whether every field is set and returns the resulting
// setting.
func (r RawWindowSetting) Complete() (WindowSetting, bool) {
	if r.Width == nil || r.Height == nil || r.X == nil || r.Y == nil || r.Repeat == nil {
		return WindowSetting{}, false
	}
	return WindowSetting{
		Width:  *r.Width,
		Height: *r.Height,
		X:      *r.X,
		Y:      *r.Y,
		Repeat: *r.Repeat,
	}, true
}

// build validates the entry. It returns ok=false together with one problem
// per unusable field when the entry must be skipped.
func (e rawEntry) build() (WindowSetting, []*EntryError, bool) {
	if e.Invalid != nil {
		return WindowSetting{}, []*EntryError{{Entry: e.Name, Source: e.Source, Err: e.Invalid}}, false
	}

	var problems []*EntryError
	raw := RawWindowSetting{
		Width:  e.intField(FieldWidth, &problems),
		Height: e.intField(FieldHeight, &problems),
		X:      e.intField(FieldX, &problems),
		Y:      e.intField(FieldY, &problems),
		Repeat: e.intField(FieldRepeat, &problems),
	}

	setting, ok := raw.Complete()
	if !ok {
		return WindowSetting{}, problems, false
	}
	return setting, nil, true
}

func (e rawEntry) intField(name string, problems *[]*EntryError) *int {
	f, ok := e.Fields[name]
	if !ok {
		*problems = append(*problems, &EntryError{Entry: e.Name, Field: name, Source: e.Source, Err: ErrMissingField})
		return nil
	}
	if f.Value == nil {
		*problems = append(*problems, &EntryError{Entry: e.Name, Field: name, Source: f.Source, Err: f.Err})
		return nil
	}
	return f.Value
}

// entrySet keeps document order while letting a later entry with the same
// name replace an earlier one.
type entrySet struct {
	index   map[string]int
	entries []rawEntry
}

func newEntrySet() *entrySet {
	return &entrySet{index: make(map[string]int)}
}

func (s *entrySet) put(e rawEntry) {
	if i, ok := s.index[e.Name]; ok {
		s.entries[i] = e
		return
	}
	s.index[e.Name] = len(s.entries)
	s.entries = append(s.entries, e)
}

func (s *entrySet) list() []rawEntry {
	return s.entries
}
