// Package ui holds the site's cosmetic behaviours as small functions over
// capability interfaces: sharing, the hero typewriter and the contact
// button. Scroll and menu handling live in the browser script, which reads
// its thresholds from BrowserSettings.
package ui
