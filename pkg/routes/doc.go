// Package routes is the page table of the order desk: names, paths and the
// display metadata (title, icon, navigation visibility) of every page.
package routes
