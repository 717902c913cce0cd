package gentsdecl

// Classify splits the fields of m into plain fields and one group per declared
// oneof. Input order is preserved inside every bucket. Every declared oneof gets
// a group, even when no field refers to it.
func Classify(m *MessageSpec) (plain []FieldSpec, groups [][]FieldSpec) {
	groups = make([][]FieldSpec, m.GroupCount)
	for _, f := range m.Fields {
		if f.GroupIndex == nil {
			plain = append(plain, f)
			continue
		}
		g := *f.GroupIndex
		groups[g] = append(groups[g], f)
	}
	return plain, groups
}
