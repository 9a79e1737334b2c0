package main

import (
	"github.com/dave/jennifer/jen"
)

// emitMethodTable writes Methods and NewRegistry
func (g *generator) emitMethodTable() {
	var infos []jen.Code
	for _, cp := range g.plan.Classes {
		for _, mp := range cp.Methods {
			infos = append(infos, jen.Values(jen.Dict{
				jen.Id("Class"):       jen.Id(classConstName(cp.Class.Name)),
				jen.Id("Method"):      jen.Id(methodConstName(cp.Class.Name, mp.Method.Name)),
				jen.Id("Name"):        jen.Lit(wireName(cp.Class.Name, mp.Method.Name)),
				jen.Id("Synchronous"): jen.Lit(mp.Method.Synchronous),
			}))
		}
	}

	g.f.Comment("Methods lists every method in the schema.")
	g.f.Var().Id(g.declare("Methods", "method table")).Op("=").Index().Add(amqpQual("MethodInfo")).Values(infos...)

	g.f.Comment("NewRegistry returns a registry with an unregistered slot for every method.")
	g.f.Func().Id(g.declare("NewRegistry", "registry constructor")).Params().Op("*").Add(amqpQual("Registry")).Block(
		jen.Return(amqpQual("NewRegistry").Call(jen.Id("Methods").Op("..."))),
	)
}

func unknownClass() jen.Code {
	return jen.Op("&").Add(amqpQual("UnknownClassError")).Values(kv("Class", jen.Id("classID")))
}

func unknownMethod() jen.Code {
	return jen.Op("&").Add(amqpQual("UnknownMethodError")).Values(
		kv("Class", jen.Id("classID")),
		kv("Method", jen.Id("methodID")),
	)
}

// emitDispatch writes the two-level switch that decodes an inbound method
// and hands it to the registry
func (g *generator) emitDispatch() {
	name := g.declare("Dispatch", "dispatch")

	var classCases []jen.Code
	for _, cp := range g.plan.Classes {
		var methodCases []jen.Code
		for _, mp := range cp.Methods {
			methodCases = append(methodCases,
				jen.Case(jen.Id(methodConstName(cp.Class.Name, mp.Method.Name))).Block(
					jen.Id("m").Op("=").Op("&").Id(mp.Record()).Values(),
				),
			)
		}
		methodCases = append(methodCases, jen.Default().Block(jen.Return(unknownMethod())))
		classCases = append(classCases,
			jen.Case(jen.Id(classConstName(cp.Class.Name))).Block(
				jen.Switch(jen.Id("methodID")).Block(methodCases...),
			),
		)
	}
	classCases = append(classCases, jen.Default().Block(jen.Return(unknownClass())))

	g.f.Commentf("%s decodes an inbound method payload and invokes its registered handler.", name)
	g.f.Comment("Unknown ids yield *amqp.UnknownClassError or *amqp.UnknownMethodError; a method")
	g.f.Comment("with no handler yields *amqp.MethodNotImplementedError.")
	g.f.Func().Id(name).Params(
		jen.Id("reg").Op("*").Add(amqpQual("Registry")),
		jen.Id("ch").Op("*").Add(amqpQual("Channel")),
		jen.List(jen.Id("classID"), jen.Id("methodID")).Uint16(),
		jen.Id("dec").Op("*").Add(amqpQual("Decoder")),
	).Error().Block(
		jen.Var().Id("m").Add(amqpQual("Method")),
		jen.Switch(jen.Id("classID")).Block(classCases...),
		returnOnErr(jen.Id("m").Dot("Decode").Call(jen.Id("dec"))),
		returnOnErr(jen.Id("dec").Dot("ExpectEnd").Call()),
		jen.Return(jen.Id("reg").Dot("Handle").Call(jen.Id("ch"), jen.Id("m"))),
	)
}

// emitIsSynchronous writes the lookup of each method's synchronous flag
func (g *generator) emitIsSynchronous() {
	name := g.declare("IsSynchronous", "synchronous lookup")

	var classCases []jen.Code
	for _, cp := range g.plan.Classes {
		var methodCases []jen.Code
		for _, mp := range cp.Methods {
			methodCases = append(methodCases,
				jen.Case(jen.Id(methodConstName(cp.Class.Name, mp.Method.Name))).Block(
					jen.Return(jen.Lit(mp.Method.Synchronous), jen.Nil()),
				),
			)
		}
		methodCases = append(methodCases, jen.Default().Block(jen.Return(jen.False(), unknownMethod())))
		classCases = append(classCases,
			jen.Case(jen.Id(classConstName(cp.Class.Name))).Block(
				jen.Switch(jen.Id("methodID")).Block(methodCases...),
			),
		)
	}
	classCases = append(classCases, jen.Default().Block(jen.Return(jen.False(), unknownClass())))

	g.f.Commentf("%s reports whether the schema marks a method synchronous.", name)
	g.f.Func().Id(name).Params(
		jen.List(jen.Id("classID"), jen.Id("methodID")).Uint16(),
	).Params(jen.Bool(), jen.Error()).Block(
		jen.Switch(jen.Id("classID")).Block(classCases...),
	)
}

// interruptSpec names a notification the await loop acknowledges itself
type interruptSpec struct {
	Key    string // amqp.Interrupts field
	Class  string
	Method string
}

var interruptSpecs = []interruptSpec{
	{Key: "ConnectionClose", Class: "connection", Method: "close"},
	{Key: "ChannelCancel", Class: "basic", Method: "cancel"},
}

// interruptPlans returns the notification and acknowledgement plans for
// spec, or nil if the schema lacks either method
func (g *generator) interruptPlans(spec interruptSpec) (notify, ack *MethodPlan) {
	notify = g.plan.Lookup(spec.Class, spec.Method)
	if notify == nil || notify.Method.Response() == "" {
		return nil, nil
	}
	ack = g.plan.Lookup(spec.Class, notify.Method.Response())
	if ack == nil {
		return nil, nil
	}
	return notify, ack
}

// emitInterrupts writes the Interrupts table and one acknowledge function
// per interrupt present in the schema
func (g *generator) emitInterrupts() {
	entries := jen.Dict{}
	for _, spec := range interruptSpecs {
		notify, ack := g.interruptPlans(spec)
		if notify == nil {
			debugf("no %s interrupt: %s.%s or its response is absent", spec.Key, spec.Class, spec.Method)
			continue
		}

		fn := g.declare("ack"+spec.Key, "acknowledgement for "+wireName(spec.Class, spec.Method))
		g.emitAcknowledge(fn, notify, ack)

		entries[jen.Id(spec.Key)] = jen.Op("&").Add(amqpQual("Interrupt")).Values(jen.Dict{
			jen.Id("ClassMethod"): amqpQual("ClassMethod").Values(
				kv("Class", jen.Id(classConstName(notify.Class.Name))),
				kv("Method", jen.Id(methodConstName(notify.Class.Name, notify.Method.Name))),
			),
			jen.Id("Acknowledge"): jen.Id(fn),
		})
	}

	g.f.Comment("Interrupts are the notifications a waiting synchronous call acknowledges itself.")
	g.f.Var().Id(g.declare("Interrupts", "interrupt table")).Op("=").Add(amqpQual("Interrupts")).Values(entries)
}

// emitAcknowledge writes a function that decodes the notification, replies
// with its acknowledgement on the channel number the notification arrived
// on and returns the decoded notification. Fields of the acknowledgement are
// copied from same-named notification fields.
func (g *generator) emitAcknowledge(name string, notify, ack *MethodPlan) {
	notifyFields := make(map[string]Category)
	for _, fp := range notify.Visible() {
		notifyFields[fp.GoName()] = fp.Type.Category
	}

	var copied []jen.Code
	for _, fp := range ack.Visible() {
		if cat, ok := notifyFields[fp.GoName()]; ok && sameGoType(cat, fp.Type.Category) {
			copied = append(copied, kv(fp.GoName(), jen.Id("m").Dot(fp.GoName())))
		}
	}

	g.f.Commentf("%s answers %s with %s.", name,
		wireName(notify.Class.Name, notify.Method.Name), wireName(ack.Class.Name, ack.Method.Name))
	g.f.Func().Id(name).Params(
		jen.Id("ch").Op("*").Add(amqpQual("Channel")),
		jen.Id("channel").Uint16(),
		jen.Id("dec").Op("*").Add(amqpQual("Decoder")),
	).Params(amqpQual("Method"), jen.Error()).Block(
		jen.Id("m").Op(":=").Op("&").Id(notify.Record()).Values(),
		returnOnErr(jen.Id("m").Dot("Decode").Call(jen.Id("dec")), jen.Nil()),
		returnOnErr(jen.Id("dec").Dot("ExpectEnd").Call(), jen.Nil()),
		returnOnErr(jen.Id("ch").Dot("SendOn").Call(jen.Id("channel"), jen.Op("&").Id(ack.Record()).Values(copied...)), jen.Nil()),
		jen.Return(jen.Id("m"), jen.Nil()),
	)
}

// sameGoType reports whether two categories share a generated Go type
func sameGoType(a, b Category) bool {
	if a == b {
		return true
	}
	str := func(c Category) bool { return c == CategoryShortStr || c == CategoryLongStr }
	return str(a) && str(b)
}

// emitChannelOptions writes the helper that wires this schema into a channel
func (g *generator) emitChannelOptions() {
	name := g.declare("ChannelOptions", "channel options")
	g.f.Commentf("%s wires Dispatch, Interrupts and reg into channel options. A nil", name)
	g.f.Comment("reg is replaced by NewRegistry().")
	g.f.Func().Id(name).Params(jen.Id("reg").Op("*").Add(amqpQual("Registry"))).Add(amqpQual("Options")).Block(
		jen.If(jen.Id("reg").Op("==").Nil()).Block(
			jen.Id("reg").Op("=").Id("NewRegistry").Call(),
		),
		jen.Return(amqpQual("Options").Values(
			kv("Registry", jen.Id("reg")),
			kv("Dispatch", jen.Id("Dispatch")),
			kv("Interrupts", jen.Id("Interrupts")),
		)),
	)
}
