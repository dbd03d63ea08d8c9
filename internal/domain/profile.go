package domain

type Profile struct {
	Name            string
	Degree          string
	CurrentPosition Position
	YearsOfService  int
}

// Requirement returns the requirement tier for the profile's position.
func (p Profile) Requirement() (PromotionRequirement, bool) {
	return RequirementFor(p.CurrentPosition)
}

// ProfilePatch carries optional profile edits; nil fields are left alone.
type ProfilePatch struct {
	Name            *string
	Degree          *string
	CurrentPosition *Position
	YearsOfService  *int
}

// Apply returns p with every non-nil patch field written over it.
func (patch ProfilePatch) Apply(p Profile) Profile {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Degree != nil {
		p.Degree = *patch.Degree
	}
	if patch.CurrentPosition != nil {
		p.CurrentPosition = *patch.CurrentPosition
	}
	if patch.YearsOfService != nil {
		p.YearsOfService = *patch.YearsOfService
	}
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (patch ProfilePatch) IsEmpty() bool {
	return patch.Name == nil && patch.Degree == nil && patch.CurrentPosition == nil && patch.YearsOfService == nil
}
