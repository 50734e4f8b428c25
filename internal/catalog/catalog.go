// Package catalog holds the static product/flow/role question data that
// drives the practice wizard. The catalog is read-only after construction.
package catalog

import "fmt"

// Role is the seniority target the user is practicing for. It selects the
// question subset and shapes the tone of evaluation prompts.
type Role string

const (
	RoleEntryLevel Role = "Entry Level PM"
	RoleMidLevel   Role = "Mid-Level PM"
	RoleSenior     Role = "Senior PM"
)

// Roles returns all roles in display order.
func Roles() []Role {
	return []Role{RoleEntryLevel, RoleMidLevel, RoleSenior}
}

// ParseRole converts a string to a Role with validation.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEntryLevel, RoleMidLevel, RoleSenior:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

// String returns the display form of the role.
func (r Role) String() string {
	return string(r)
}

// Question is a single practice prompt shown to the user.
type Question struct {
	// Text is the question presented to the user
	Text string

	// Placeholder is the hint shown in the empty answer box
	Placeholder string
}

// Flow is a named user journey within a product, with questions per role.
type Flow struct {
	Name      string
	Questions map[Role][]Question
}

// Product is a real-world app the user can deconstruct.
type Product struct {
	Name        string
	Icon        string
	Description string

	// Flows preserves declaration order for display.
	Flows []Flow
}

// Flow returns the named flow, if present.
func (p *Product) Flow(name string) (*Flow, bool) {
	for i := range p.Flows {
		if p.Flows[i].Name == name {
			return &p.Flows[i], true
		}
	}
	return nil, false
}

// FlowNames returns the product's flow names in declaration order.
func (p *Product) FlowNames() []string {
	names := make([]string, 0, len(p.Flows))
	for _, f := range p.Flows {
		names = append(names, f.Name)
	}
	return names
}

// LookupError reports a (product, flow, role) combination absent from the
// catalog. The wizard enforces selection order, so hitting one of these is a
// programming error rather than a user-recoverable condition.
type LookupError struct {
	Product string
	Flow    string
	Role    Role
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("catalog: no questions for product=%q flow=%q role=%q", e.Product, e.Flow, e.Role)
}

// Catalog is an ordered, keyed collection of products.
type Catalog struct {
	products []Product
	byName   map[string]*Product
}

// New builds a Catalog from the given products, preserving order.
func New(products ...Product) *Catalog {
	c := &Catalog{
		products: products,
		byName:   make(map[string]*Product, len(products)),
	}
	for i := range c.products {
		c.byName[c.products[i].Name] = &c.products[i]
	}
	return c
}

// Products returns all products in declaration order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Product returns the named product, if present.
func (c *Catalog) Product(name string) (*Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Flows returns the flow names for a product, or a LookupError if the
// product is unknown.
func (c *Catalog) Flows(product string) ([]string, error) {
	p, ok := c.byName[product]
	if !ok {
		return nil, &LookupError{Product: product}
	}
	return p.FlowNames(), nil
}

// Lookup returns the ordered question list for a (product, flow, role)
// combination. It fails with a LookupError instead of returning a nil slice
// so missing-combination bugs surface immediately.
func (c *Catalog) Lookup(product, flow string, role Role) ([]Question, error) {
	p, ok := c.byName[product]
	if !ok {
		return nil, &LookupError{Product: product, Flow: flow, Role: role}
	}
	f, ok := p.Flow(flow)
	if !ok {
		return nil, &LookupError{Product: product, Flow: flow, Role: role}
	}
	qs, ok := f.Questions[role]
	if !ok || len(qs) == 0 {
		return nil, &LookupError{Product: product, Flow: flow, Role: role}
	}
	return qs, nil
}
