// SPDX-License-Identifier: Unlicense OR MIT

/*
Package rating implements a rating scale widget: a row of icons that
displays either a fractional average rating or a rating chosen by the
user.

A Scale is laid out with three images from its Config. The empty image
is the base of every item, the filled image is revealed from the left
to draw the average, and the chosen image replaces both once the user
has picked a rating by pressing or dragging across the scale. Dragging
off the left edge chooses zero.

For example:

	cfg := rating.NewConfig(empty, filled, chosen)
	scale := rating.NewScale(cfg, 3.5)
	scale.OnChange(func(s *rating.Scale) {
		if r, ok := s.Chosen(); ok {
			log.Printf("rated %d", r)
		}
	})
	...
	scale.Layout(gtx)

Package gioui.org/x/rating/theme provides Material Design star and heart
configurations.
*/
package rating
