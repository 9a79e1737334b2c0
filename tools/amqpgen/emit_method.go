package main

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

func bitsVar(group int) string {
	return fmt.Sprintf("bits%d", group)
}

func bitMask(bit int) *jen.Statement {
	return jen.Lit(1).Op("<<").Lit(bit)
}

func receiver(record string) *jen.Statement {
	return jen.Id("m").Op("*").Id(record)
}

// emitRecord writes the record type for a method and its amqp.Method
// implementation
func (g *generator) emitRecord(mp *MethodPlan) {
	c, m := mp.Class, mp.Method
	wire := wireName(c.Name, m.Name)
	rec := g.declare(mp.Record(), "method "+wire)

	seen := make(map[string]string)
	fields := make([]jen.Code, 0, len(mp.Fields))
	for _, fp := range mp.Visible() {
		name := fp.GoName()
		if prev, ok := seen[name]; ok {
			g.errs = append(g.errs, errors.Errorf("%s: fields %s and %s both generate %s", wire, prev, fp.Field.Name, name))
			continue
		}
		seen[name] = fp.Field.Name
		fields = append(fields, jen.Id(name).Add(goType(fp.Type)))
	}

	g.f.Commentf("%s is %s (%d.%d).", rec, wire, c.Index, m.Index)
	g.f.Type().Id(rec).Struct(fields...)

	g.f.Func().Params(receiver(rec)).Id("ClassID").Params().Uint16().Block(
		jen.Return(jen.Id(classConstName(c.Name))),
	)
	g.f.Func().Params(receiver(rec)).Id("MethodID").Params().Uint16().Block(
		jen.Return(jen.Id(methodConstName(c.Name, m.Name))),
	)
	g.f.Func().Params(receiver(rec)).Id("MethodName").Params().String().Block(
		jen.Return(jen.Lit(wire)),
	)

	g.f.Func().Params(receiver(rec)).Id("Encode").Params(
		jen.Id("enc").Op("*").Add(amqpQual("Encoder")),
	).Error().Block(encodeBody(mp)...)

	g.f.Func().Params(receiver(rec)).Id("Decode").Params(
		jen.Id("dec").Op("*").Add(amqpQual("Decoder")),
	).Error().Block(decodeBody(mp)...)

	g.f.Var().Id("_").Add(amqpQual("Method")).Op("=").Parens(jen.Op("*").Id(rec)).Parens(jen.Nil())
}

// encodeBody writes fields in declared order. Bits are accumulated into
// their octet and the octet is written after the last bit it holds.
func encodeBody(mp *MethodPlan) []jen.Code {
	var body []jen.Code
	for _, fp := range mp.Fields {
		if slot := fp.Bit; slot != nil {
			v := bitsVar(slot.Group)
			if slot.StartsByte {
				body = append(body, jen.Var().Id(v).Uint8())
			}
			if fp.Field.Reserved {
				body = append(body, jen.Id(v).Op("&^=").Add(bitMask(slot.Bit)))
			} else {
				body = append(body, jen.If(jen.Id("m").Dot(fp.GoName())).Block(
					jen.Id(v).Op("|=").Add(bitMask(slot.Bit)),
				).Else().Block(
					jen.Id(v).Op("&^=").Add(bitMask(slot.Bit)),
				))
			}
			if slot.EndsByte {
				body = append(body, returnOnErr(jen.Id("enc").Dot("EncodeOctet").Call(jen.Id(v))))
			}
			continue
		}

		var value jen.Code
		if fp.Field.Reserved {
			value = reservedValue(fp.Type)
		} else {
			value = jen.Id("m").Dot(fp.GoName())
		}
		body = append(body, returnOnErr(jen.Id("enc").Dot(fp.Type.Encode).Call(value)))
	}
	return append(body, jen.Return(jen.Nil()))
}

// decodeBody mirrors encodeBody from the same plan. Reserved fields are
// read and discarded.
func decodeBody(mp *MethodPlan) []jen.Code {
	if len(mp.Fields) == 0 {
		return []jen.Code{jen.Return(jen.Nil())}
	}

	body := []jen.Code{jen.Var().Id("err").Error()}
	for _, fp := range mp.Fields {
		if slot := fp.Bit; slot != nil {
			v := bitsVar(slot.Group)
			if slot.StartsByte {
				if groupHasVisibleBits(mp, slot.Group) {
					body = append(body,
						jen.Var().Id(v).Uint8(),
						assignOrReturn(jen.Id(v), "DecodeOctet"),
					)
				} else {
					body = append(body, assignOrReturn(jen.Id("_"), "DecodeOctet"))
				}
			}
			if !fp.Field.Reserved {
				body = append(body, jen.Id("m").Dot(fp.GoName()).Op("=").
					Id(v).Op("&").Parens(bitMask(slot.Bit)).Op("!=").Lit(0))
			}
			continue
		}

		target := jen.Id("_")
		if !fp.Field.Reserved {
			target = jen.Id("m").Dot(fp.GoName())
		}
		body = append(body, assignOrReturn(target, fp.Type.Decode))
	}
	return append(body, jen.Return(jen.Nil()))
}

// assignOrReturn renders "if target, err = dec.<decode>(); err != nil { return err }"
func assignOrReturn(target jen.Code, decode string) jen.Code {
	return jen.If(
		jen.List(target, jen.Err()).Op("=").Id("dec").Dot(decode).Call(),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Err()))
}

func groupHasVisibleBits(mp *MethodPlan, group int) bool {
	for _, fp := range mp.Fields {
		if fp.Bit != nil && fp.Bit.Group == group && !fp.Field.Reserved {
			return true
		}
	}
	return false
}

// recordLiteral renders &Record{Field: param, ...} in declared order
func recordLiteral(mp *MethodPlan) *jen.Statement {
	var values []jen.Code
	for _, fp := range mp.Visible() {
		values = append(values, kv(fp.GoName(), jen.Id(fp.Param())))
	}
	return jen.Op("&").Id(mp.Record()).Values(values...)
}

func helperParams(mp *MethodPlan) []jen.Code {
	params := []jen.Code{jen.Id("ch").Op("*").Add(amqpQual("Channel"))}
	for _, fp := range mp.Visible() {
		params = append(params, jen.Id(fp.Param()).Add(goType(fp.Type)))
	}
	return params
}

// emitHelpers writes the role-specific call helper and the typed handler
// registration for a method
func (g *generator) emitHelpers(mp *MethodPlan) {
	c, m := mp.Class, mp.Method
	wire := wireName(c.Name, m.Name)
	rec := mp.Record()

	switch mp.Role {
	case RoleSyncCall:
		var resps []*MethodPlan
		for _, r := range m.Responses {
			resp := g.plan.Lookup(c.Name, r)
			if resp == nil {
				g.errs = append(g.errs, errors.Errorf("%s: response %s has no plan", wire, r))
				return
			}
			resps = append(resps, resp)
		}
		name := g.declare(rec+"Sync", "sync helper for "+wire)
		send := returnOnErr(jen.Id("ch").Dot("Send").Call(recordLiteral(mp)), jen.Nil())

		if len(resps) == 1 {
			respRec := resps[0].Record()
			g.f.Commentf("%s sends %s and waits for %s.", name, wire, wireName(c.Name, resps[0].Method.Name))
			g.f.Func().Id(name).Params(helperParams(mp)...).Params(jen.Op("*").Id(respRec), jen.Error()).Block(
				send,
				jen.Id("resp").Op(":=").Op("&").Id(respRec).Values(),
				returnOnErr(jen.Id("ch").Dot("Await").Call(jen.Id("resp")), jen.Nil()),
				jen.Return(jen.Id("resp"), jen.Nil()),
			)
			break
		}

		var waits, recs []string
		var into []jen.Code
		for _, resp := range resps {
			waits = append(waits, wireName(c.Name, resp.Method.Name))
			recs = append(recs, "*"+resp.Record())
			into = append(into, jen.Op("&").Id(resp.Record()).Values())
		}
		g.f.Commentf("%s sends %s and waits for %s.", name, wire, strings.Join(waits, " or "))
		g.f.Commentf("The reply is one of %s.", strings.Join(recs, ", "))
		g.f.Func().Id(name).Params(helperParams(mp)...).Params(amqpQual("Method"), jen.Error()).Block(
			send,
			jen.Return(jen.Id("ch").Dot("AwaitAny").Call(into...)),
		)

	case RoleAsyncSend:
		name := g.declare(rec+"Async", "async helper for "+wire)
		g.f.Commentf("%s sends %s without waiting for a reply.", name, wire)
		g.f.Func().Id(name).Params(helperParams(mp)...).Error().Block(
			jen.Return(jen.Id("ch").Dot("Send").Call(recordLiteral(mp))),
		)

	case RoleResponse:
		name := g.declare(rec+"Resp", "response helper for "+wire)
		g.f.Commentf("%s replies with %s.", name, wire)
		g.f.Func().Id(name).Params(helperParams(mp)...).Error().Block(
			jen.Return(jen.Id("ch").Dot("Send").Call(recordLiteral(mp))),
		)
	}

	on := g.declare("On"+rec, "handler registration for "+wire)
	g.f.Commentf("%s registers fn as the handler for inbound %s.", on, wire)
	g.f.Func().Id(on).Params(
		jen.Id("reg").Op("*").Add(amqpQual("Registry")),
		jen.Id("fn").Func().Params(
			jen.Id("ch").Op("*").Add(amqpQual("Channel")),
			jen.Id("m").Op("*").Id(rec),
		).Error(),
	).Block(
		jen.Id("reg").Dot("Register").Call(
			jen.Id(classConstName(c.Name)),
			jen.Id(methodConstName(c.Name, m.Name)),
			jen.Func().Params(
				jen.Id("ch").Op("*").Add(amqpQual("Channel")),
				jen.Id("m").Add(amqpQual("Method")),
			).Error().Block(
				jen.Return(jen.Id("fn").Call(jen.Id("ch"), jen.Id("m").Assert(jen.Op("*").Id(rec)))),
			),
		),
	)
}
