package protocol

//go:generate sh -c "go run ../tools/amqpgen ../tools/amqpgen/testdata/amqp-subset.xml > protocol_gen.go"
