package service

// Owns reports whether the acting user owns a resource, given the owner's
// username. A resource with no owner is owned by nobody. The same predicate
// gates every post and comment mutation; callers must respond to a failed
// check exactly as they respond to a missing resource, so non-owners cannot
// probe for existence.
func Owns(ownerUsername, actorUsername string) bool {
	return ownerUsername != "" && ownerUsername == actorUsername
}
