package plot

// Package plot renders the correlation figure shown on the data
// visualisation screen: a 2D histogram of the sample with a scatter overlay,
// a highlighted region, the Pearson statistics and a static caption. Output
// is a PNG produced with go-chart; the same sample always yields the same
// image.
