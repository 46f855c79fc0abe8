// Package iching models I Ching divination.
//
// The 64 hexagrams are available by number through Lookup, and Cast
// performs a six-line divination using the three-coin or yarrow-stalk
// probabilities, producing a primary hexagram and the hexagram its
// moving lines transform into.
//
// Hexagram data and casting probabilities follow
// https://en.wikipedia.org/wiki/I_Ching_divination and
// https://en.wikipedia.org/wiki/List_of_hexagrams_of_the_I_Ching.
package iching
