// Package gridfile reads grid layouts from YAML documents.
//
// A document names an orientation and lists items. Each item picks a sizing
// mode and at most one kind of content: text, a fixed natural size, or a
// nested grid document.
//
//	orientation: vertical
//	items:
//	  - name: title
//	    sizing: intrinsic
//	    horizontal: center
//	    text: Quarterly report
//	  - sizing: expanding
//	    value: 1
//	    margin: [1, 2]
//	    grid:
//	      orientation: horizontal
//	      items:
//	        - {name: chart, sizing: expanding, value: 2}
//	        - {name: legend, sizing: fixed, value: 12, vertical: "leading:4"}
package gridfile
