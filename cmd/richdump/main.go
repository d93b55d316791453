package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	rich "github.com/wanglei-coder/richheader"
)

type args struct {
	Path string `arg:"positional,required" help:"path to a PE file"`
	JSON bool   `arg:"--json" help:"emit the report as JSON"`
}

type productReport struct {
	BuildNumber uint16
	ProductID   uint16
	ObjectCount uint32
	Product     string
	VSVersion   string
}

type report struct {
	XorKey        uint32
	DansOffset    uint32
	Size          uint32
	RichHash      string
	ChecksumValid bool
	Products      []productReport
}

func main() {
	var a args
	arg.MustParse(&a)

	data, err := os.ReadFile(a.Path)
	if err != nil {
		log.Fatal(err)
	}

	if !filetype.IsType(data, matchers.TypeExe) {
		log.Fatalf("%s: not a PE file", a.Path)
	}

	f, err := rich.NewFileFromBytes(data)
	if err != nil {
		log.Fatal(err)
	}

	rh := f.RichHeader
	if rh == nil {
		fmt.Println("no rich header")
		return
	}

	products := make([]productReport, 0, len(rh.Products))
	for _, p := range rh.Products {
		products = append(products, productReport{
			BuildNumber: p.BuildNumber,
			ProductID:   p.ProductID,
			ObjectCount: p.ObjectCount,
			Product:     rich.ProductName(p.ProductID),
			VSVersion:   rich.ProductVSVersion(p.ProductID),
		})
	}

	if a.JSON {
		r := report{
			XorKey:        rh.XorKey,
			DansOffset:    rh.DansOffset,
			Size:          rh.Size,
			RichHash:      rh.RichHash(),
			ChecksumValid: f.ChecksumValid(),
			Products:      products,
		}
		out, _ := json.MarshalIndent(&r, "", "    ")
		fmt.Printf("%s\n", out)
		return
	}

	fmt.Printf("key: 0x%08x  offset: %d  size: %d  hash: %s\n",
		rh.XorKey, rh.DansOffset, rh.Size, rh.RichHash())
	for i, p := range products {
		fmt.Printf("%-3d buildNo: 0x%08x objCount: %-5d product_id(%03d): %-30s %s\n",
			i, p.BuildNumber, p.ObjectCount, p.ProductID, p.VSVersion, p.Product)
	}
}
