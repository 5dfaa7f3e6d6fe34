// Package querysparql generates Gravsearch query text from queryir search
// records.
//
// Generate is the stateless core: the same (record, offset) pair always
// yields byte-identical output. GravsearchCompiler wraps it with the
// pagination contract. A compilation at offset 0 registers the record with
// a ParamsSink, so a later "load next page" can call Generate again with
// only the offset changed. Non-zero offsets never touch the sink.
//
// OUTPUT LAYOUT:
//
// The blank lines in generated queries are part of the contract with the
// backend parser and with stored golden files. Every selection N
// contributes:
//
//	\n?mainRes <prop> ?propValN .\n\n\n   (or a FILTER NOT EXISTS block)
//	\n<restriction>\n
//
// where the restriction depends on the (value kind, operator) pair:
//
//	literal kinds    ?propValN <valueAs> ?propValNLiteral + FILTER(... op ...)
//	Like             FILTER regex(?propValNLiteral, "v"^^<t>, "i")
//	Match            FILTER <knora-api:matchText>(?propValN, "v"^^<t>)
//	date             FILTER(knora-api:toSimpleDate(?propValN) op "v"^^<t>)
//	list node        ?propValN <listValueAsListNode> <node>
//	link, Exists     no restriction
package querysparql
