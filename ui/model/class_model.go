package model

// ClassModel holds the class id new boxes are drawn with. The zero value selects class 0.
type ClassModel struct{ id int }

// Current returns the selected class id.
func (m *ClassModel) Current() int {
	if m == nil {
		return 0
	}
	return m.id
}

// Set stores the selected class id. Negative ids are ignored.
func (m *ClassModel) Set(id int) {
	if m == nil || id < 0 {
		return
	}
	m.id = id
}
