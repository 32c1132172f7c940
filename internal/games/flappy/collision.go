package flappy

// CheckCollision reports whether the actor touches the obstacle.
//
// The actor is treated as a circle of radius width/2 around its center; the
// height is ignored. The test clamps the center into the obstacle rectangle
// and compares squared distances.
func CheckCollision(a *Actor, o *Obstacle, fieldH float64) bool {
	px, py := o.Bounds(fieldH).ClosestPoint(a.X, a.Y)
	dx := a.X - px
	dy := a.Y - py
	r := a.Radius()
	return dx*dx+dy*dy < r*r
}

// firstCollision returns the index of the first obstacle the actor touches,
// or -1.
func firstCollision(a *Actor, obstacles []Obstacle, fieldH float64) int {
	for i := range obstacles {
		if CheckCollision(a, &obstacles[i], fieldH) {
			return i
		}
	}
	return -1
}
