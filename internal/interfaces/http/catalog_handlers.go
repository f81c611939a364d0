package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tours/internal/entities"
	"tours/internal/repository"
)

func (s *Server) ListPackagesHandler(c echo.Context) error {
	var (
		f   = repository.PackageFilter{Destination: c.QueryParam("destination"), Search: c.QueryParam("search")}
		err error
	)
	if f.Featured, err = queryBool(c, "featured"); err != nil {
		return err
	}
	if f.Active, err = queryBool(c, "active"); err != nil {
		return err
	}
	if f.MinPrice, err = queryDecimal(c, "minPrice"); err != nil {
		return err
	}
	if f.MaxPrice, err = queryDecimal(c, "maxPrice"); err != nil {
		return err
	}

	packages, err := s.svc.Catalog.ListPackages(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, packages)
}

func (s *Server) GetPackageHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	pkg, err := s.svc.Catalog.GetPackage(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pkg)
}

func (s *Server) PackagePriceHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	flightIncluded, err := queryBool(c, "flightIncluded")
	if err != nil {
		return err
	}

	quote, err := s.svc.Catalog.PackagePrice(
		c.Request().Context(),
		id,
		entities.HotelCategory(c.QueryParam("hotelCategory")),
		flightIncluded != nil && *flightIncluded,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quote)
}

func (s *Server) CreatePackageHandler(c echo.Context) error {
	pkg, err := s.svc.Catalog.CreatePackage(c.Request().Context(), func(p *entities.TourPackage) error {
		return c.Bind(p)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, pkg)
}

func (s *Server) UpdatePackageHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	pkg, err := s.svc.Catalog.UpdatePackage(c.Request().Context(), id, func(p *entities.TourPackage) error {
		return c.Bind(p)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pkg)
}

func (s *Server) DeletePackageHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.svc.Catalog.DeletePackage(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListEventsHandler(c echo.Context) error {
	var (
		f   = repository.EventFilter{Location: c.QueryParam("location"), Search: c.QueryParam("search")}
		err error
	)
	if f.Active, err = queryBool(c, "active"); err != nil {
		return err
	}
	if f.DateFrom, err = queryTime(c, "dateFrom"); err != nil {
		return err
	}
	if f.DateTo, err = queryTime(c, "dateTo"); err != nil {
		return err
	}

	events, err := s.svc.Catalog.ListEvents(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}

func (s *Server) GetEventHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := s.svc.Catalog.GetEvent(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, event)
}

func (s *Server) CreateEventHandler(c echo.Context) error {
	event, err := s.svc.Catalog.CreateEvent(c.Request().Context(), func(e *entities.TourEvent) error {
		return c.Bind(e)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, event)
}

func (s *Server) UpdateEventHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := s.svc.Catalog.UpdateEvent(c.Request().Context(), id, func(e *entities.TourEvent) error {
		return c.Bind(e)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, event)
}

func (s *Server) DeleteEventHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.svc.Catalog.DeleteEvent(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListAvailabilityHandler(c echo.Context) error {
	var (
		f   repository.AvailabilityFilter
		err error
	)
	if f.PackageID, err = queryInt64(c, "packageId"); err != nil {
		return err
	}
	if f.EventID, err = queryInt64(c, "eventId"); err != nil {
		return err
	}
	if f.From, err = queryDate(c, "from"); err != nil {
		return err
	}
	if f.To, err = queryDate(c, "to"); err != nil {
		return err
	}

	rows, err := s.svc.Catalog.ListAvailability(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}

func (s *Server) CreateAvailabilityHandler(c echo.Context) error {
	row, err := s.svc.Catalog.CreateAvailability(c.Request().Context(), func(a *entities.Availability) error {
		return c.Bind(a)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, row)
}

func (s *Server) UpdateAvailabilityHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	row, err := s.svc.Catalog.UpdateAvailability(c.Request().Context(), id, func(a *entities.Availability) error {
		return c.Bind(a)
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, row)
}

func (s *Server) TranslationsHandler(c echo.Context) error {
	entityID, err := pathID(c, "entityId")
	if err != nil {
		return err
	}

	translations, err := s.svc.Catalog.Translations(
		c.Request().Context(),
		c.Param("entityType"),
		entityID,
		c.QueryParam("language"),
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, translations)
}

func (s *Server) SaveTranslationHandler(c echo.Context) error {
	var t entities.Translation
	if err := c.Bind(&t); err != nil {
		return err
	}

	if err := s.svc.Catalog.SaveTranslation(c.Request().Context(), &t); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, t)
}
