// Package platform owns the registry that maps free-text console names onto
// firmware folder codes, scraping-engine platform identifiers, and catalogue
// names. A system is usable only when all three namespaces are known.
package platform
