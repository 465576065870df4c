package models

// Catalog holds the closed sets the portal validates against: bookable
// venues, departments, student branches, bookable equipment, semesters and
// exam types. It is built once at startup and injected, never mutated.
type Catalog struct {
	venues     []string
	venueSet   map[string]struct{}
	deptSet    map[string]struct{}
	branchSet  map[string]struct{}
	equipSet   map[string]struct{}
	semSet     map[string]struct{}
	examSet    map[string]struct{}
	branches   []string
	equipment  []string
}

func NewCatalog() *Catalog {
	venues := []string{
		// Seminar halls
		"Main Seminar Hall", "Conference Room A", "Conference Room B", "Auditorium", "Mini Hall",
		// Classrooms
		"Classroom 101", "Classroom 102", "Classroom 103", "Classroom 201", "Classroom 202",
		"Classroom 203", "Classroom 301", "Classroom 302", "Classroom 303", "Classroom 401",
		"Classroom 402", "Classroom 403",
		// Labs
		"Computer Lab 1", "Computer Lab 2", "Computer Lab 3",
	}
	departments := []string{"CSE", "ECE", "EEE", "Mechanical", "Civil", "Other"}
	branches := []string{"CSE", "ECE", "EEE", "Mechanical", "Civil", "CSM", "CSD", "Other"}
	equipment := []string{"Projector", "Microphone", "Speakers", "Whiteboard", "Video Conference", "None"}
	semesters := []string{"1-1", "1-2", "2-1", "2-2", "3-1", "3-2", "4-1", "4-2"}
	examTypes := []string{"Mid-1", "Mid-2", "Semester", "Assignment", "Lab"}

	return &Catalog{
		venues:    venues,
		venueSet:  toSet(venues),
		deptSet:   toSet(departments),
		branchSet: toSet(branches),
		equipSet:  toSet(equipment),
		semSet:    toSet(semesters),
		examSet:   toSet(examTypes),
		branches:  branches,
		equipment: equipment,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (c *Catalog) IsValidVenue(name string) bool {
	_, ok := c.venueSet[name]
	return ok
}

func (c *Catalog) IsValidDepartment(name string) bool {
	_, ok := c.deptSet[name]
	return ok
}

func (c *Catalog) IsValidBranch(name string) bool {
	_, ok := c.branchSet[name]
	return ok
}

func (c *Catalog) IsValidEquipment(name string) bool {
	_, ok := c.equipSet[name]
	return ok
}

func (c *Catalog) IsValidSemester(name string) bool {
	_, ok := c.semSet[name]
	return ok
}

func (c *Catalog) IsValidExamType(name string) bool {
	_, ok := c.examSet[name]
	return ok
}

// Venues returns the ordered venue list.
func (c *Catalog) Venues() []string {
	out := make([]string, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c *Catalog) Branches() []string {
	out := make([]string, len(c.branches))
	copy(out, c.branches)
	return out
}

func (c *Catalog) Equipment() []string {
	out := make([]string, len(c.equipment))
	copy(out, c.equipment)
	return out
}
