package erpclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Estructuras del protocolo JSON del backend (nombres en portugués).

type idRef struct {
	IDProduto    json.RawMessage `json:"idProduto,omitempty"`
	IDCliente    json.RawMessage `json:"idCliente,omitempty"`
	IDFornecedor json.RawMessage `json:"idFornecedor,omitempty"`
	IDEndereco   json.RawMessage `json:"idEndereco,omitempty"`
}

type transacaoWire struct {
	IDProduto     json.RawMessage `json:"idProduto"`
	Produto       *idRef          `json:"produto"`
	DataTransacao json.RawMessage `json:"dataTransacao"`
	TipoOperacao  *string         `json:"tipoOperacao"`
	NroDocumento  json.RawMessage `json:"nroDocumento"`
	Quantidade    json.RawMessage `json:"quantidade"`
	ValorUnitario json.RawMessage `json:"valorUnitario"`
}

type produtoWire struct {
	IDProduto   json.RawMessage `json:"idProduto,omitempty"`
	Codigo      string          `json:"codigo"`
	NomeProduto string          `json:"nomeProduto"`
	PrecoCusto  json.RawMessage `json:"precoCusto"`
	PrecoVenda  json.RawMessage `json:"precoVenda"`
	Quantidade  json.RawMessage `json:"quantidade"`
}

type nomeLogradouro struct {
	NomeLogradouro string `json:"nomeLogradouro"`
}

type nomeBairro struct {
	NomeBairro string `json:"nomeBairro"`
}

type cidadeWire struct {
	NomeCidade        string `json:"nomeCidade"`
	UnidadeFederativa *struct {
		SiglaUF string `json:"siglaUF"`
	} `json:"unidadeFederativa"`
}

type enderecoWire struct {
	IDEndereco json.RawMessage `json:"idEndereco"`
	Logradouro *nomeLogradouro `json:"logradouro"`
	Bairro     *nomeBairro     `json:"bairro"`
	Cidade     *cidadeWire     `json:"cidade"`
}

type clienteWire struct {
	IDCliente       json.RawMessage `json:"idCliente,omitempty"`
	NomeCliente     string          `json:"nomeCliente"`
	Nome            string          `json:"nome,omitempty"`
	NomeFantasia    string          `json:"nomeFantasia,omitempty"`
	CPF             string          `json:"cpf"`
	CNPJ            string          `json:"cnpj"`
	NroEndereco     json.RawMessage `json:"nroEndereco"`
	EnderecoCliente *idRef          `json:"enderecoCliente"`
}

type fornecedorWire struct {
	IDFornecedor       json.RawMessage `json:"idFornecedor,omitempty"`
	NomeFornecedor     string          `json:"nomeFornecedor"`
	Nome               string          `json:"nome,omitempty"`
	CNPJ               string          `json:"cnpj"`
	NroEndereco        json.RawMessage `json:"nroEndereco"`
	EnderecoFornecedor *idRef          `json:"enderecoFornecedor"`
}

type operacaoRef struct {
	IDOperacaoEstoque int `json:"idOperacaoEstoque"`
}

type itemPedidoWire struct {
	OperacaoEstoque operacaoRef     `json:"operacaoEstoque"`
	Produto         idRef           `json:"produto"`
	Quantidade      json.RawMessage `json:"quantidade"`
	ValorUnitario   json.RawMessage `json:"valorUnitario"`
}

type pedidoWire struct {
	NroDocumento json.RawMessage  `json:"nroDocumento"`
	DtTransacao  json.RawMessage  `json:"dtTransacao"`
	Fornecedor   *fornecedorWire  `json:"fornecedor"`
	Cliente      *clienteWire     `json:"cliente"`
	Itens        []itemPedidoWire `json:"itens"`
}

// pedidoRequest cuerpo de registro: la contraparte va solo como referencia de id.
type pedidoRequest struct {
	NroDocumento string           `json:"nroDocumento"`
	DtTransacao  int64            `json:"dtTransacao"`
	Fornecedor   *idRef           `json:"fornecedor,omitempty"`
	Cliente      *idRef           `json:"cliente,omitempty"`
	Itens        []itemPedidoWire `json:"itens"`
}

// Coerción tolerante de valores sueltos.

// decimalOf interpreta números JSON y cadenas numéricas. Nulo, ausente o no numérico es inválido.
func decimalOf(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// quantityOf cantidad ausente o no numérica cuenta como 0.
func quantityOf(raw json.RawMessage) decimal.Decimal {
	d, _ := decimalOf(raw)
	return d
}

func nullDecimalOf(raw json.RawMessage) decimal.NullDecimal {
	d, ok := decimalOf(raw)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}

// stringOf acepta identificadores numéricos o de texto.
func stringOf(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// rawID serializa un identificador para el backend: número si es entero, texto si no.
func rawID(id string) json.RawMessage {
	if id == "" {
		return nil
	}
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.RawMessage(id)
	}
	b, _ := json.Marshal(id)
	return b
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timestampOf acepta ISO-8601 (con o sin zona), epoch en milisegundos y el arreglo
// [año, mes, día, hora, min, seg, nanos] que produce Jackson para LocalDateTime.
// Fechas sin zona se interpretan en loc.
func timestampOf(raw json.RawMessage, loc *time.Location) (time.Time, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case '[':
		var parts []int
		if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 3 {
			return time.Time{}, false
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], loc), true
	default:
		ms, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).In(loc), true
	}
}

// Mapeos wire -> dominio.

func (w *transacaoWire) toEntity(fallbackProductID string, loc *time.Location) (*entity.MovementRecord, bool) {
	productID := stringOf(w.IDProduto)
	if productID == "" && w.Produto != nil {
		productID = stringOf(w.Produto.IDProduto)
	}
	if productID == "" {
		productID = fallbackProductID
	}
	label := ""
	if w.TipoOperacao != nil {
		label = *w.TipoOperacao
	}
	ts, tsOK := timestampOf(w.DataTransacao, loc)
	return &entity.MovementRecord{
		ProductID:      productID,
		Timestamp:      ts,
		OperationLabel: label,
		Operation:      entity.ParseOperation(label),
		DocumentNumber: stringOf(w.NroDocumento),
		Quantity:       quantityOf(w.Quantidade),
		UnitValue:      nullDecimalOf(w.ValorUnitario),
	}, tsOK
}

func (w *produtoWire) toEntity() *entity.Product {
	cost, _ := decimalOf(w.PrecoCusto)
	sale, _ := decimalOf(w.PrecoVenda)
	return &entity.Product{
		ID:        stringOf(w.IDProduto),
		Code:      w.Codigo,
		Name:      w.NomeProduto,
		CostPrice: cost,
		SalePrice: sale,
		Quantity:  quantityOf(w.Quantidade),
	}
}

func produtoFromEntity(p *entity.Product) produtoWire {
	return produtoWire{
		IDProduto:   rawID(p.ID),
		Codigo:      p.Code,
		NomeProduto: p.Name,
		PrecoCusto:  json.RawMessage(p.CostPrice.String()),
		PrecoVenda:  json.RawMessage(p.SalePrice.String()),
		Quantidade:  json.RawMessage(p.Quantity.Truncate(0).String()),
	}
}

func (w *enderecoWire) toEntity() *entity.Address {
	a := &entity.Address{ID: stringOf(w.IDEndereco)}
	if w.Logradouro != nil {
		a.Street = w.Logradouro.NomeLogradouro
	}
	if w.Bairro != nil {
		a.Neighborhood = w.Bairro.NomeBairro
	}
	if w.Cidade != nil {
		a.City = w.Cidade.NomeCidade
		if w.Cidade.UnidadeFederativa != nil {
			a.State = w.Cidade.UnidadeFederativa.SiglaUF
		}
	}
	return a
}

func (w *clienteWire) toEntity() *entity.Client {
	c := &entity.Client{
		ID:            stringOf(w.IDCliente),
		Name:          firstNonEmpty(w.NomeCliente, w.Nome, w.NomeFantasia),
		CPF:           w.CPF,
		CNPJ:          w.CNPJ,
		AddressNumber: stringOf(w.NroEndereco),
	}
	if w.EnderecoCliente != nil {
		c.AddressID = stringOf(w.EnderecoCliente.IDEndereco)
	}
	return c
}

func clienteFromEntity(c *entity.Client) clienteWire {
	return clienteWire{
		IDCliente:       rawID(c.ID),
		NomeCliente:     c.Name,
		CPF:             c.CPF,
		CNPJ:            c.CNPJ,
		NroEndereco:     rawOrNull(c.AddressNumber),
		EnderecoCliente: &idRef{IDEndereco: rawID(c.AddressID)},
	}
}

func (w *fornecedorWire) toEntity() *entity.Supplier {
	s := &entity.Supplier{
		ID:            stringOf(w.IDFornecedor),
		Name:          firstNonEmpty(w.NomeFornecedor, w.Nome),
		CNPJ:          w.CNPJ,
		AddressNumber: stringOf(w.NroEndereco),
	}
	if w.EnderecoFornecedor != nil {
		s.AddressID = stringOf(w.EnderecoFornecedor.IDEndereco)
	}
	return s
}

func fornecedorFromEntity(s *entity.Supplier) fornecedorWire {
	return fornecedorWire{
		IDFornecedor:       rawID(s.ID),
		NomeFornecedor:     s.Name,
		CNPJ:               s.CNPJ,
		NroEndereco:        rawOrNull(s.AddressNumber),
		EnderecoFornecedor: &idRef{IDEndereco: rawID(s.AddressID)},
	}
}

func (w *pedidoWire) toEntity(kind string, loc *time.Location) *entity.Order {
	o := &entity.Order{Kind: kind, DocumentNumber: stringOf(w.NroDocumento)}
	o.Date, _ = timestampOf(w.DtTransacao, loc)
	if w.Fornecedor != nil {
		s := w.Fornecedor.toEntity()
		o.PartyID, o.PartyName = s.ID, s.Name
	}
	if w.Cliente != nil {
		c := w.Cliente.toEntity()
		o.PartyID, o.PartyName = c.ID, c.Name
	}
	for _, it := range w.Itens {
		o.Items = append(o.Items, entity.OrderItem{
			ProductID: stringOf(it.Produto.IDProduto),
			Quantity:  quantityOf(it.Quantidade),
			UnitValue: quantityOf(it.ValorUnitario),
		})
	}
	return o
}

// pedidoFromEntity arma el cuerpo de /pedido/compra o /pedido/venda. dtTransacao va en epoch ms.
func pedidoFromEntity(o *entity.Order) pedidoRequest {
	opID := entity.StockOperationID(o.Kind)
	w := pedidoRequest{
		NroDocumento: o.DocumentNumber,
		DtTransacao:  o.Date.UnixMilli(),
		Itens:        make([]itemPedidoWire, 0, len(o.Items)),
	}
	if o.Kind == entity.OrderKindPurchase {
		w.Fornecedor = &idRef{IDFornecedor: rawID(o.PartyID)}
	} else {
		w.Cliente = &idRef{IDCliente: rawID(o.PartyID)}
	}
	for _, it := range o.Items {
		w.Itens = append(w.Itens, itemPedidoWire{
			OperacaoEstoque: operacaoRef{IDOperacaoEstoque: opID},
			Produto:         idRef{IDProduto: rawID(it.ProductID)},
			Quantidade:      json.RawMessage(it.Quantity.Truncate(0).String()),
			ValorUnitario:   json.RawMessage(it.UnitValue.String()),
		})
	}
	return w
}

func rawOrNull(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("null")
	}
	return rawID(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
