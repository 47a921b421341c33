// Package pages serves the HTML pages of the order desk: the dashboard,
// product, client and order listings, and the order create/edit forms.
// Every page shares a layout with the navigation menu and the toast
// container, and sets its browser title from the route table.
package pages
