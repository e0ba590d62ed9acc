// Package menu holds the MenuItem aggregate: a dish the restaurant sells, with a
// name and a current price. Orders reference menu items; the price read at order
// placement fixes the order total, while sales reports read the current price.
package menu
