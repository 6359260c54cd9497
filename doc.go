// Package statplot provides high-level statistical plotting functions on
// top of gonum/plot: timeseries with bootstrap confidence bands, regression
// scatterplots, styled boxplots, kernel density estimates, violin plots and
// correlation-matrix heatmaps.
//
// Every plotting function takes the *plot.Plot to draw onto (nil creates a
// fresh one), the data, and an optional options struct, and returns the
// plot it drew on. Statistics are delegated to gonum and
// go-moremath/stats; rendering is delegated to gonum/plot, with
// go-echarts HTML variants for interactive use.
package statplot
