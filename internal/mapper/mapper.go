// Package mapper holds the pure transformation functions between stored
// entities and transfer shapes. Nothing here touches the database;
// computed display fields live on the DTOs themselves.
package mapper

// deref unwraps an optional string column for DTO consumption.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional converts a DTO string field back to its nullable column form,
// treating empty as absent.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
