// Package artwork normalizes scraped images to the firmware's fixed box and
// preview resolutions, cropping to fit rather than stretching.
package artwork
