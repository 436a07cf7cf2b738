// Package document converts nested declarative documents into flat style
// rules and back.
//
// A document is a nested mapping. Ordinary keys extend the noun path by one
// segment; keys starting with "$" attach a state variant to the path built
// so far:
//
//	nav:
//	  button:
//	    icon: plain-glyph          # nav.button.icon, no states
//	    $hover: hover-style        # nav.button, {hover}
//	    $disabled,selected: dim    # nav.button, {disabled, selected}
//	    "$*": base-style           # nav.button, base wildcard
//	    $: empty-style             # nav.button, explicit empty state
//
// The value under a "$" key is always a payload, even when it is itself a
// mapping. A non-mapping value under an ordinary key is a payload with no
// states. A mapping under an ordinary key always nests; mapping-shaped
// payloads therefore go under a "$" key.
//
// JSON, YAML and XML decode in document order, which the sheet's tie-break
// depends on. TOML decodes through unordered maps, so its keys are emitted
// lexically sorted at each level; that sorted order is canonical for TOML
// documents. In XML, element names build the path and a "states" attribute
// marks variants:
//
//	<styles>
//	  <nav>
//	    <button>
//	      <icon>plain-glyph</icon>
//	      <icon states="hover">hover-glyph</icon>
//	      <icon states="*">base-glyph</icon>
//	    </button>
//	  </nav>
//	</styles>
//
// XML payloads are strings (or nested string mappings); typed payloads come
// from the other formats.
package document
